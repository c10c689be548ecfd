package purchases

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/mailmart/backend/internal/domain"
	"github.com/mailmart/backend/internal/dto"
	"github.com/mailmart/backend/internal/service/profileservice"
	"github.com/mailmart/backend/internal/service/purchaseservice"
	"github.com/mailmart/backend/pkg/auth"
	"github.com/mailmart/backend/pkg/utils"
)

type Service interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	Purchase(ctx context.Context, userID uuid.UUID, productID string, quantity int) (*domain.Purchase, error)
	GetPurchases(ctx context.Context, userID uuid.UUID) ([]domain.Purchase, error)
}

type PurchaseHandler struct {
	purchaseService Service
}

func New(purchaseService Service) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
	}
}

func toPurchaseDTO(p *domain.Purchase) dto.PurchaseResponseDTO {
	return dto.PurchaseResponseDTO{
		ID:          p.ID.String(),
		ProductID:   p.ProductID,
		ProductName: p.ProductName,
		Quantity:    p.Quantity,
		Total:       p.Total,
		Credentials: json.RawMessage(p.Credentials),
		CreatedAt:   p.CreatedAt,
	}
}

// GetProducts godoc
//
//	@Summary		List products
//	@Description	List mail-account products currently available at the upstream reseller.
//	@Tags			Каталог
//	@Produce		json
//	@Success		200	{array}		dto.ProductResponseDTO	"Available products"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/products [get]
func (h *PurchaseHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.purchaseService.ListProducts(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	response := make([]dto.ProductResponseDTO, len(products))
	for i, p := range products {
		response[i] = dto.ProductResponseDTO{
			ID:        p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Available: p.Available,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreatePurchase godoc
//
//	@Summary		Buy mail accounts
//	@Description	Debit the user's balance and order accounts from the upstream reseller.
//	@Tags			Покупки
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PurchaseRequestDTO	true	"Purchase request payload"
//	@Success		200		{object}	dto.PurchaseResponseDTO	"Completed purchase"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		402		{object}	utils.Response			"Insufficient balance"
//	@Failure		404		{object}	utils.Response			"Product not found"
//	@Failure		409		{object}	utils.Response			"Not enough accounts in stock"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/purchases [post]
func (h *PurchaseHandler) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	var req dto.PurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	purchase, err := h.purchaseService.Purchase(r.Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, purchaseservice.ErrInvalidQuantity):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, profileservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, purchaseservice.ErrProductNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, purchaseservice.ErrOutOfStock):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toPurchaseDTO(purchase))
}

// GetPurchases godoc
//
//	@Summary		Get purchase history
//	@Description	List the authenticated user's purchases sorted by creation date.
//	@Tags			Покупки
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PurchaseResponseDTO	"Purchase history"
//	@Success		204	{object}	utils.Response			"Purchases not found"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/purchases [get]
func (h *PurchaseHandler) GetPurchases(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	purchases, err := h.purchaseService.GetPurchases(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch purchases")
		return
	}

	if len(purchases) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Purchases not found")
		return
	}

	response := make([]dto.PurchaseResponseDTO, len(purchases))
	for i, p := range purchases {
		response[i] = toPurchaseDTO(&p)
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}
