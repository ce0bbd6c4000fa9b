package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"

	"signature-seal-backend/config"
	"signature-seal-backend/services"
	"signature-seal-backend/utils"
)

type CheckoutInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Service string `json:"service"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Mileage any    `json:"mileage"`
}

// CheckoutController hands priced line items to Stripe Checkout and
// returns the hosted payment page URL.
type CheckoutController struct {
	cfg    config.Config
	logger *zap.Logger
}

func NewCheckoutController(cfg config.Config, logger *zap.Logger) *CheckoutController {
	return &CheckoutController{cfg: cfg, logger: logger}
}

func (cc *CheckoutController) CreateCheckoutSession(c *gin.Context) {
	if cc.cfg.StripeKey == "" {
		utils.RespondWithError(c, http.StatusInternalServerError, "Payment is not configured")
		return
	}

	var input CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	items := services.CheckoutLineItems(input.Service, services.CoerceMileage(input.Mileage))

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(string(stripe.CurrencyUSD)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(item.AmountCents),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  lineItems,
		SuccessURL: stripe.String(cc.cfg.CheckoutSuccessURL),
		CancelURL:  stripe.String(cc.cfg.CheckoutCancelURL),
	}
	if input.Email != "" {
		params.CustomerEmail = stripe.String(input.Email)
	}

	s, err := session.New(params)
	if err != nil {
		cc.logger.Error("checkout session failed", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create checkout session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": s.URL})
}
