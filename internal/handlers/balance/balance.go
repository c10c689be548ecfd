package balance

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/mailmart/backend/internal/domain"
	"github.com/mailmart/backend/internal/dto"
	"github.com/mailmart/backend/pkg/auth"
	"github.com/mailmart/backend/pkg/utils"
)

type Service interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
}

type BalanceHandler struct {
	profileService Service
}

func New(profileService Service) *BalanceHandler {
	return &BalanceHandler{
		profileService: profileService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current user balance
//	@Description	Retrieve the current store-credit balance for the authenticated user.
//	@Tags			Баланс
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	profile, err := h.profileService.GetProfile(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Balance: profile.Balance,
	})
}
