package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/internal/utils/catalog"
	"github.com/SscSPs/currency_exchange_app/internal/utils/conversion"
)

// Login exchanges admin credentials for a session.
func (c *Client) Login(ctx context.Context, name, password string) (*Session, error) {
	var resp dto.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/admin/login", nil, nil, dto.LoginRequest{Name: name, Password: password}, &resp); err != nil {
		return nil, err
	}
	return &Session{AdminName: name, Token: resp.Token, ExpiresAt: resp.ExpiresAt}, nil
}

// Me returns the admin owning the session.
func (c *Client) Me(ctx context.Context, s *Session) (*dto.AdminResponse, error) {
	if s == nil {
		return nil, ErrNoSession
	}
	var resp dto.AdminResponse
	if err := c.do(ctx, http.MethodGet, "/admin/me", nil, s, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListCountries returns the whole catalog as raw entries, in catalog order.
// Filtering for the calculator is left to catalog.FilterActive.
func (c *Client) ListCountries(ctx context.Context) ([]catalog.RawEntry, error) {
	var resp []catalog.RawEntry
	if err := c.do(ctx, http.MethodGet, "/countries", nil, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateCountry adds a country to the catalog.
func (c *Client) CreateCountry(ctx context.Context, s *Session, req dto.CreateCountryRequest) (*dto.CountryResponse, error) {
	if s == nil {
		return nil, ErrNoSession
	}
	var resp dto.CreateCountryResponse
	if err := c.do(ctx, http.MethodPost, "/countries", nil, s, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Country, nil
}

// UpdateCountries sends a bulk partial update. It is applied entirely or not at all.
func (c *Client) UpdateCountries(ctx context.Context, s *Session, updates []dto.UpdateCountryRequest) error {
	if s == nil {
		return ErrNoSession
	}
	return c.do(ctx, http.MethodPut, "/countries", nil, s, updates, nil)
}

// EnableCountry makes a country available to the calculator.
func (c *Client) EnableCountry(ctx context.Context, s *Session, id string) error {
	if s == nil {
		return ErrNoSession
	}
	return c.do(ctx, http.MethodPut, "/countries/"+url.PathEscape(id)+"/enable", nil, s, nil, nil)
}

// DisableCountry hides a country from the calculator.
func (c *Client) DisableCountry(ctx context.Context, s *Session, id string) error {
	if s == nil {
		return ErrNoSession
	}
	return c.do(ctx, http.MethodPut, "/countries/"+url.PathEscape(id)+"/disable", nil, s, nil, nil)
}

// DeleteCountry removes a country from the catalog.
func (c *Client) DeleteCountry(ctx context.Context, s *Session, id string) error {
	if s == nil {
		return ErrNoSession
	}
	return c.do(ctx, http.MethodDelete, "/countries/"+url.PathEscape(id), nil, s, nil, nil)
}

// ListComments returns the published comments.
func (c *Client) ListComments(ctx context.Context) ([]dto.CommentResponse, error) {
	var resp []dto.CommentResponse
	if err := c.do(ctx, http.MethodGet, "/comments", nil, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ListAllComments returns every comment, hidden ones included.
func (c *Client) ListAllComments(ctx context.Context, s *Session) ([]dto.CommentResponse, error) {
	if s == nil {
		return nil, ErrNoSession
	}
	var resp []dto.CommentResponse
	if err := c.do(ctx, http.MethodGet, "/admin/comments", nil, s, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// PostComment leaves a comment. It stays hidden until moderated.
func (c *Client) PostComment(ctx context.Context, name, comment string) (*dto.CommentResponse, error) {
	var resp dto.CreateCommentResponse
	if err := c.do(ctx, http.MethodPost, "/comments", nil, nil, dto.CreateCommentRequest{Name: name, Comment: comment}, &resp); err != nil {
		return nil, err
	}
	return &resp.Comment, nil
}

// UpdateCommentVisibility publishes or hides comments in bulk.
func (c *Client) UpdateCommentVisibility(ctx context.Context, s *Session, updates []dto.CommentVisibilityUpdate) error {
	if s == nil {
		return ErrNoSession
	}
	return c.do(ctx, http.MethodPut, "/comments-visibility", nil, s, updates, nil)
}

// DeleteComments removes comments and returns how many were deleted.
func (c *Client) DeleteComments(ctx context.Context, s *Session, ids []string) (int64, error) {
	if s == nil {
		return 0, ErrNoSession
	}
	var resp dto.DeleteCommentsResponse
	if err := c.do(ctx, http.MethodDelete, "/comments", nil, s, dto.DeleteCommentsRequest{IDs: ids}, &resp); err != nil {
		return 0, err
	}
	return resp.Deleted, nil
}

// Convert asks the backend to run the calculator.
func (c *Client) Convert(ctx context.Context, amount float64, from, to string, dir conversion.Direction) (*dto.ConvertResponse, error) {
	q := url.Values{}
	q.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))
	q.Set("from", from)
	q.Set("to", to)
	q.Set("direction", dir.String())

	var resp dto.ConvertResponse
	if err := c.do(ctx, http.MethodGet, "/convert", q, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
