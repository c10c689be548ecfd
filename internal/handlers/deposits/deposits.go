package deposits

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mailmart/backend/internal/domain"
	"github.com/mailmart/backend/internal/dto"
	"github.com/mailmart/backend/internal/gateway"
	"github.com/mailmart/backend/internal/service/depositservice"
	"github.com/mailmart/backend/pkg/auth"
	"github.com/mailmart/backend/pkg/utils"
)

type Service interface {
	CreateDeposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, currency string, gatewayName string) (*domain.Deposit, error)
	GetDeposits(ctx context.Context, userID uuid.UUID) ([]domain.Deposit, error)
}

type DepositHandler struct {
	depositService Service
}

func New(depositService Service) *DepositHandler {
	return &DepositHandler{
		depositService: depositService,
	}
}

func toDepositDTO(d *domain.Deposit) dto.DepositResponseDTO {
	return dto.DepositResponseDTO{
		ID:         d.ID.String(),
		Amount:     d.Amount,
		Currency:   d.Currency,
		Gateway:    d.Gateway,
		PaymentID:  d.PaymentID,
		Status:     string(d.Status),
		PayAddress: d.PayAddress,
		CreatedAt:  d.CreatedAt,
		ExpiresAt:  d.ExpiresAt,
	}
}

// CreateDeposit godoc
//
//	@Summary		Create a deposit
//	@Description	Create a gateway invoice and a waiting deposit for the authenticated user.
//	@Tags			Депозиты
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateDepositRequestDTO	true	"Deposit request payload"
//	@Success		200		{object}	dto.DepositResponseDTO		"Created deposit"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		422		{object}	utils.Response				"Invalid amount"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/deposits [post]
func (h *DepositHandler) CreateDeposit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	var req dto.CreateDepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	deposit, err := h.depositService.CreateDeposit(r.Context(), userID, req.Amount, req.Currency, req.Gateway)
	if err != nil {
		switch {
		case errors.Is(err, depositservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, gateway.ErrUnknownGateway):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toDepositDTO(deposit))
}

// GetDeposits godoc
//
//	@Summary		Get deposit history
//	@Description	List the authenticated user's deposits sorted by creation date.
//	@Tags			Депозиты
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.DepositResponseDTO	"Deposit history"
//	@Success		204	{object}	utils.Response			"Deposits not found"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/deposits [get]
func (h *DepositHandler) GetDeposits(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	deposits, err := h.depositService.GetDeposits(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch deposits")
		return
	}

	if len(deposits) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Deposits not found")
		return
	}

	response := make([]dto.DepositResponseDTO, len(deposits))
	for i, d := range deposits {
		response[i] = toDepositDTO(&d)
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}
