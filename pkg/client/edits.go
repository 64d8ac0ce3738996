package client

import (
	"context"

	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/internal/utils/catalog"
)

// CountryUpdater is the part of Client that PendingEdits submits through.
type CountryUpdater interface {
	UpdateCountries(ctx context.Context, s *Session, updates []dto.UpdateCountryRequest) error
}

// PendingEdits collects unsaved catalog changes keyed by country id. The
// catalog it is merged into is never modified.
type PendingEdits struct {
	order   []string
	patches map[string]*dto.UpdateCountryRequest
}

// NewPendingEdits returns an empty edit set.
func NewPendingEdits() *PendingEdits {
	return &PendingEdits{patches: make(map[string]*dto.UpdateCountryRequest)}
}

func (p *PendingEdits) patch(id string) *dto.UpdateCountryRequest {
	if pt, ok := p.patches[id]; ok {
		return pt
	}
	pt := &dto.UpdateCountryRequest{ID: id}
	p.patches[id] = pt
	p.order = append(p.order, id)
	return pt
}

func (p *PendingEdits) SetName(id, name string) {
	p.patch(id).Name = &name
}

func (p *PendingEdits) SetCurrencyCode(id, code string) {
	p.patch(id).CurrencyCode = &code
}

func (p *PendingEdits) SetUSDPrice(id string, price float64) {
	p.patch(id).USDPrice = &price
}

func (p *PendingEdits) SetFlagImage(id, flag string) {
	p.patch(id).FlagImage = &flag
}

func (p *PendingEdits) SetEnabled(id string, enabled bool) {
	p.patch(id).Enabled = &enabled
}

// Len is the number of countries with pending changes.
func (p *PendingEdits) Len() int {
	return len(p.order)
}

// Patches returns the pending changes in the order they were first made.
func (p *PendingEdits) Patches() []dto.UpdateCountryRequest {
	out := make([]dto.UpdateCountryRequest, 0, len(p.order))
	for _, id := range p.order {
		out = append(out, *p.patches[id])
	}
	return out
}

// Merge returns a copy of raw with the pending changes applied. Edits for
// ids missing from raw are ignored.
func (p *PendingEdits) Merge(raw []catalog.RawEntry) []catalog.RawEntry {
	out := make([]catalog.RawEntry, len(raw))
	copy(out, raw)
	for i := range out {
		pt, ok := p.patches[out[i].ID]
		if !ok {
			continue
		}
		if pt.Name != nil {
			out[i].Name = *pt.Name
		}
		if pt.CurrencyCode != nil {
			out[i].CurrencyCode = *pt.CurrencyCode
		}
		if pt.USDPrice != nil {
			out[i].USDPrice = *pt.USDPrice
		}
		if pt.FlagImage != nil {
			out[i].FlagImage = *pt.FlagImage
		}
		if pt.Enabled != nil {
			out[i].Enabled = *pt.Enabled
		}
	}
	return out
}

// Discard drops every pending change.
func (p *PendingEdits) Discard() {
	p.order = nil
	p.patches = make(map[string]*dto.UpdateCountryRequest)
}

// Submit sends the pending changes as one bulk update. They are discarded
// only when the backend accepts them.
func (p *PendingEdits) Submit(ctx context.Context, u CountryUpdater, s *Session) error {
	if p.Len() == 0 {
		return nil
	}
	if err := u.UpdateCountries(ctx, s, p.Patches()); err != nil {
		return err
	}
	p.Discard()
	return nil
}

// VisibilityDraft is an unsaved selection of which comments are published.
type VisibilityDraft struct {
	visible map[string]bool
}

// NewVisibilityDraft starts from the comments that are currently visible.
func NewVisibilityDraft(comments []dto.CommentResponse) *VisibilityDraft {
	d := &VisibilityDraft{visible: make(map[string]bool)}
	for _, c := range comments {
		if c.IsVisible {
			d.visible[c.ID] = true
		}
	}
	return d
}

// Toggle flips the draft visibility of one comment.
func (d *VisibilityDraft) Toggle(id string) {
	if d.visible[id] {
		delete(d.visible, id)
		return
	}
	d.visible[id] = true
}

// Visible reports the draft visibility of one comment.
func (d *VisibilityDraft) Visible(id string) bool {
	return d.visible[id]
}

// Updates builds the bulk visibility body covering every comment in comments.
func (d *VisibilityDraft) Updates(comments []dto.CommentResponse) []dto.CommentVisibilityUpdate {
	out := make([]dto.CommentVisibilityUpdate, 0, len(comments))
	for _, c := range comments {
		visible := d.visible[c.ID]
		out = append(out, dto.CommentVisibilityUpdate{ID: c.ID, IsVisible: &visible})
	}
	return out
}
