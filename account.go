package voicenotes

import (
	"context"
	"time"

	"github.com/voicenotes/client-go/internal/api"
)

// Account represents the tenant account. There is exactly one per
// credential pair, so the accessor takes no id.
type Account struct {
	ID    string
	Name  string
	Email string
	Plan  string
	// MinutesUsed is the transcription minutes consumed this billing period.
	MinutesUsed float64
	// MinutesIncluded is the plan's included transcription minutes.
	MinutesIncluded float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AccountService provides access to the tenant account.
type AccountService struct {
	api *api.Client
}

// accountFromDTO converts a wire DTO to the public type.
func accountFromDTO(dto *api.AccountDTO) *Account {
	if dto == nil {
		return nil
	}
	return &Account{
		ID:              dto.ID,
		Name:            dto.Name,
		Email:           dto.Email,
		Plan:            dto.Plan,
		MinutesUsed:     dto.MinutesUsed,
		MinutesIncluded: dto.MinutesIncluded,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
	}
}

// Get retrieves the account.
func (s *AccountService) Get(ctx context.Context) (*Account, error) {
	dto, err := s.api.GetAccount(ctx)
	if err != nil {
		return nil, classifyError(err)
	}
	return accountFromDTO(dto), nil
}

// AccountUpdateParams holds mutable account fields. Nil fields are left
// unchanged.
type AccountUpdateParams struct {
	Name  *string
	Email *string
}

// Update modifies the account and returns the updated snapshot.
func (s *AccountService) Update(ctx context.Context, params AccountUpdateParams) (*Account, error) {
	dto, err := s.api.UpdateAccount(ctx, api.UpdateAccountRequest{
		Name:  params.Name,
		Email: params.Email,
	})
	if err != nil {
		return nil, classifyError(err)
	}
	return accountFromDTO(dto), nil
}
