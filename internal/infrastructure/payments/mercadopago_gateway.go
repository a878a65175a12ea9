package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"aseguraopen/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

const mockCheckoutURL = "https://www.mercadopago.com/checkout/v1/redirect?pref_id="

type Options struct {
	AccessToken     string
	Mock            bool
	NotificationURL string
	CurrencyID      string
}

// MercadoPagoGateway creates checkout preferences and reads payment status.
// In mock mode no request leaves the process and every payment is approved.
type MercadoPagoGateway struct {
	preferences     preference.Client
	payments        payment.Client
	notificationURL string
	currencyID      string
	mockMode        bool
	log             *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(opts Options, log *zap.Logger) (*MercadoPagoGateway, error) {
	log = log.Named("mercadopago")
	currency := opts.CurrencyID
	if currency == "" {
		currency = "USD"
	}
	if opts.Mock {
		log.Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, currencyID: currency, log: log}, nil
	}

	if opts.AccessToken == "" {
		log.Error("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(opts.AccessToken)
	if err != nil {
		log.Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	log.Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferences:     preference.NewClient(cfg),
		payments:        payment.NewClient(cfg),
		notificationURL: opts.NotificationURL,
		currencyID:      currency,
		log:             log,
	}, nil
}

func (g *MercadoPagoGateway) CreatePaymentLink(ctx context.Context, req interfaces.PaymentLinkRequest) (interfaces.PaymentLink, error) {
	log := g.log.With(zap.String("policy_id", req.PolicyID), zap.String("quotation_id", req.QuotationID))
	if g.mockMode {
		id := "mock-pref-" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		raw, err := json.Marshal(map[string]any{
			"id":                 id,
			"external_reference": req.PolicyID,
			"init_point":         mockCheckoutURL + id,
			"items":              []map[string]any{{"title": req.Title, "quantity": 1, "unit_price": req.Amount}},
		})
		if err != nil {
			return interfaces.PaymentLink{}, err
		}
		log.Info("[payment][gateway] mock preference created", zap.String("preference_id", id))
		return interfaces.PaymentLink{PreferenceID: id, URL: mockCheckoutURL + id, Raw: raw}, nil
	}
	if g.preferences == nil {
		log.Error("[payment][gateway] gateway not configured")
		return interfaces.PaymentLink{}, ErrMercadoPagoGatewayNotConfigured
	}

	request := preference.Request{
		ExternalReference: req.PolicyID,
		NotificationURL:   g.notificationURL,
		Items: []preference.ItemRequest{{
			ID:         req.QuotationID,
			Title:      req.Title,
			Quantity:   1,
			UnitPrice:  req.Amount,
			CurrencyID: g.currencyID,
		}},
	}
	if req.PayerEmail != "" {
		request.Payer = &preference.PayerRequest{Name: req.PayerName, Email: req.PayerEmail}
	}

	resp, err := g.preferences.Create(ctx, request)
	if err != nil {
		log.Warn("[payment][gateway] sdk preference create failed", zap.Error(err))
		return interfaces.PaymentLink{}, err
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.PaymentLink{}, err
	}
	url := resp.InitPoint
	if url == "" {
		url = resp.SandboxInitPoint
	}
	log.Info("[payment][gateway] preference created", zap.String("preference_id", resp.ID))
	return interfaces.PaymentLink{PreferenceID: resp.ID, URL: url, Raw: raw}, nil
}

// GetPaymentStatus reads a payment by its provider id. In mock mode the
// payment is approved for the reference and amount the caller expects.
func (g *MercadoPagoGateway) GetPaymentStatus(ctx context.Context, query interfaces.PaymentStatusQuery) (interfaces.PaymentStatus, error) {
	log := g.log.With(zap.String("provider_payment_id", query.ProviderPaymentID))
	if g.mockMode {
		raw, err := json.Marshal(map[string]any{
			"id":                 query.ProviderPaymentID,
			"status":             "approved",
			"status_detail":      "accredited",
			"external_reference": query.ExternalReference,
			"transaction_amount": query.Amount,
			"date_approved":      time.Now().UTC().Format(time.RFC3339Nano),
		})
		if err != nil {
			return interfaces.PaymentStatus{}, err
		}
		log.Info("[payment][gateway] mock payment approved")
		return interfaces.PaymentStatus{
			Status:            "approved",
			ExternalReference: query.ExternalReference,
			Amount:            query.Amount,
			Raw:               raw,
		}, nil
	}
	if g.payments == nil {
		return interfaces.PaymentStatus{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(query.ProviderPaymentID))
	if err != nil {
		return interfaces.PaymentStatus{}, fmt.Errorf("invalid mercado pago payment id %q: %w", query.ProviderPaymentID, err)
	}
	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		log.Warn("[payment][gateway] sdk payment get failed", zap.Error(err))
		return interfaces.PaymentStatus{}, err
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.PaymentStatus{}, err
	}
	log.Info("[payment][gateway] payment status read", zap.String("provider_status", resp.Status))
	return interfaces.PaymentStatus{
		Status:            resp.Status,
		ExternalReference: resp.ExternalReference,
		Amount:            resp.TransactionAmount,
		Raw:               raw,
	}, nil
}
