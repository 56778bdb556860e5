// file: internals/features/assessments/ranking/selector.go
package ranking

import (
	"errors"
	"fmt"

	"discprofile_backend/internals/features/assessments/catalog"
)

/* =============================================================================
   Erros de validação (recuperáveis: o estado do seletor não muda)
============================================================================= */

var (
	ErrCapacityFull    = errors.New("ranked list is at capacity")
	ErrItemNotFound    = errors.New("item does not belong to this group")
	ErrItemNotRanked   = errors.New("item is not in the ranked list")
	ErrItemNotUnranked = errors.New("item is already ranked")
	ErrPositionRange   = errors.New("target position out of range")
	ErrIncomplete      = errors.New("ranked list is not full yet")
)

/* =============================================================================
   Selector: partição mutável de um grupo em ranked (ordenado, ≤ maxRank)
   e unranked. Toda mutação passa por Promote / Demote / Reorder; Submit
   converte posições em ranks 1..maxRank.
============================================================================= */

type Selector struct {
	maxRank  int
	ranked   []catalog.Item
	unranked []catalog.Item
}

// NewSelector cria um seletor para o grupo. items precisa ter ao menos
// maxRank entradas e textos únicos.
func NewSelector(items []catalog.Item, maxRank int) (*Selector, error) {
	if maxRank < 1 {
		return nil, fmt.Errorf("maxRank must be positive, got %d", maxRank)
	}
	if len(items) < maxRank {
		return nil, fmt.Errorf("group has %d items, need at least %d", len(items), maxRank)
	}
	seen := make(map[string]struct{}, len(items))
	unranked := make([]catalog.Item, 0, len(items))
	for _, it := range items {
		if _, dup := seen[it.Text]; dup {
			return nil, fmt.Errorf("duplicate item text: %q", it.Text)
		}
		seen[it.Text] = struct{}{}
		unranked = append(unranked, it)
	}
	return &Selector{
		maxRank:  maxRank,
		ranked:   make([]catalog.Item, 0, maxRank),
		unranked: unranked,
	}, nil
}

// NewSelectorForGroup é o atalho usado pela progressão: capacidade vem do estágio.
func NewSelectorForGroup(group catalog.Group) (*Selector, error) {
	return NewSelector(group.Items, group.Stage.MaxRank())
}

func (s *Selector) MaxRank() int { return s.maxRank }

// Ranked devolve uma cópia da lista ranqueada (posição 0 = rank 1).
func (s *Selector) Ranked() []catalog.Item {
	out := make([]catalog.Item, len(s.ranked))
	copy(out, s.ranked)
	return out
}

// Unranked devolve uma cópia do restante.
func (s *Selector) Unranked() []catalog.Item {
	out := make([]catalog.Item, len(s.unranked))
	copy(out, s.unranked)
	return out
}

// Complete indica se Submit seria aceito.
func (s *Selector) Complete() bool { return len(s.ranked) == s.maxRank }

/* =============================================================================
   Operações
============================================================================= */

// Promote move um item unranked para o fim da lista ranqueada.
// Único caminho pelo qual um item ganha rank (fora o Reorder com overflow).
func (s *Selector) Promote(text string) error {
	if len(s.ranked) >= s.maxRank {
		return ErrCapacityFull
	}
	idx := indexOf(s.unranked, text)
	if idx < 0 {
		if indexOf(s.ranked, text) >= 0 {
			return ErrItemNotUnranked
		}
		return ErrItemNotFound
	}
	item := s.unranked[idx]
	s.unranked = append(s.unranked[:idx], s.unranked[idx+1:]...)
	s.ranked = append(s.ranked, item)
	return nil
}

// Demote devolve um item ranqueado para o conjunto unranked; os demais
// preservam a ordem relativa (ranks compactam, sem buracos).
func (s *Selector) Demote(text string) error {
	idx := indexOf(s.ranked, text)
	if idx < 0 {
		if indexOf(s.unranked, text) >= 0 {
			return ErrItemNotRanked
		}
		return ErrItemNotFound
	}
	item := s.ranked[idx]
	s.ranked = append(s.ranked[:idx], s.ranked[idx+1:]...)
	s.unranked = append(s.unranked, item)
	return nil
}

// Reorder move um item para targetPos (0-based) dentro da lista ranqueada.
//   - item já ranqueado: movimento posicional puro.
//   - item unranked: equivale a Promote inserido na posição alvo; se a lista
//     já está cheia, o último ranqueado é rebaixado: o item que chega sempre
//     ganha a vaga.
func (s *Selector) Reorder(text string, targetPos int) error {
	if ri := indexOf(s.ranked, text); ri >= 0 {
		if targetPos < 0 || targetPos >= len(s.ranked) {
			return ErrPositionRange
		}
		item := s.ranked[ri]
		s.ranked = append(s.ranked[:ri], s.ranked[ri+1:]...)
		s.ranked = append(s.ranked[:targetPos], append([]catalog.Item{item}, s.ranked[targetPos:]...)...)
		return nil
	}

	ui := indexOf(s.unranked, text)
	if ui < 0 {
		return ErrItemNotFound
	}
	if targetPos < 0 || targetPos > len(s.ranked) || targetPos >= s.maxRank {
		return ErrPositionRange
	}
	item := s.unranked[ui]
	s.unranked = append(s.unranked[:ui], s.unranked[ui+1:]...)

	if len(s.ranked) == s.maxRank {
		// overflow: rebaixa o último ranqueado para abrir a vaga
		evicted := s.ranked[len(s.ranked)-1]
		s.ranked = s.ranked[:len(s.ranked)-1]
		s.unranked = append(s.unranked, evicted)
	}
	s.ranked = append(s.ranked[:targetPos], append([]catalog.Item{item}, s.ranked[targetPos:]...)...)
	return nil
}

// Submit converte posições em ranks (posição 0 → rank 1) e devolve o
// mapeamento texto → rank. Rejeitado enquanto a lista não estiver cheia.
func (s *Selector) Submit() (map[string]int, error) {
	if len(s.ranked) != s.maxRank {
		return nil, ErrIncomplete
	}
	out := make(map[string]int, len(s.ranked))
	for pos, item := range s.ranked {
		out[item.Text] = pos + 1
	}
	return out, nil
}

// RankedItems devolve os itens ranqueados junto com o rank de cada um,
// na ordem de preferência. Mesma validação do Submit.
func (s *Selector) RankedItems() ([]RankedItem, error) {
	if len(s.ranked) != s.maxRank {
		return nil, ErrIncomplete
	}
	out := make([]RankedItem, 0, len(s.ranked))
	for pos, item := range s.ranked {
		out = append(out, RankedItem{Item: item, Rank: pos + 1})
	}
	return out, nil
}

type RankedItem struct {
	Item catalog.Item `json:"item"`
	Rank int          `json:"rank"` // 1 = mais característico/importante
}

func indexOf(items []catalog.Item, text string) int {
	for i, it := range items {
		if it.Text == text {
			return i
		}
	}
	return -1
}
