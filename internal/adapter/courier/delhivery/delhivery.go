package delhivery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/govalues/decimal"
	"github.com/shopkart/fulfillment/internal/adapter/config"
	"github.com/shopkart/fulfillment/internal/core/domain"
	"go.uber.org/zap"
)

const requestTimeout = 30 * time.Second

// Client wraps the Delhivery API. It normalizes the courier's wire schema
// into the application vocabulary so callers never see raw field names.
type Client struct {
	logger     *zap.Logger
	baseURL    string
	apiKey     string
	clientName string
	pickup     pickupLocation
	httpClient *http.Client
}

type pickupLocation struct {
	Name    string `json:"name"`
	Address string `json:"add"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pin     string `json:"pin_code"`
	Country string `json:"country"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
}

func NewClient(cfg *config.Delhivery, log *zap.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrConfiguration, err)
	}

	return &Client{
		logger:     log,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		clientName: cfg.ClientName,
		pickup: pickupLocation{
			Name:    cfg.PickupName,
			Address: cfg.PickupAddress,
			City:    cfg.PickupCity,
			State:   cfg.PickupState,
			Pin:     cfg.PickupPin,
			Country: cfg.PickupCountry,
			Phone:   cfg.PickupPhone,
			Email:   cfg.PickupEmail,
		},
		httpClient: &http.Client{Timeout: requestTimeout},
	}, nil
}

type shipmentPayload struct {
	Name              string `json:"name"`
	Address           string `json:"add"`
	City              string `json:"city"`
	State             string `json:"state"`
	Country           string `json:"country"`
	Pin               string `json:"pin"`
	Phone             string `json:"phone"`
	Order             string `json:"order"`
	ProductsDesc      string `json:"products_desc"`
	Weight            int64  `json:"weight"`
	PaymentMode       string `json:"payment_mode"`
	CollectableAmount string `json:"cod_amount,omitempty"`
}

type createRequest struct {
	PickupLocation pickupLocation    `json:"pickup_location"`
	Shipments      []shipmentPayload `json:"shipments"`
}

type createResponse struct {
	Success  bool   `json:"success"`
	Remark   string `json:"rmk"`
	Packages []struct {
		Status      string   `json:"status"`
		Waybill     string   `json:"waybill"`
		Serviceable bool     `json:"serviceable"`
		Remarks     []string `json:"remarks"`
	} `json:"packages"`
}

// CreateShipment books a shipment. The carrier expects a URL-encoded body
// holding a format marker and a JSON payload; the client name must exactly
// match the registered account or the request is rejected outright.
func (c *Client) CreateShipment(ctx context.Context, req *domain.ShipmentRequest) (*domain.ShipmentResult, error) {
	shipment := shipmentPayload{
		Name:         req.Destination.Name,
		Address:      req.Destination.Line,
		City:         req.Destination.City,
		State:        req.Destination.State,
		Country:      req.Destination.Country,
		Pin:          req.Destination.Pin,
		Phone:        req.Destination.Phone,
		Order:        req.OrderNumber,
		ProductsDesc: req.ProductsDesc,
		Weight:       req.WeightGrams,
		PaymentMode:  string(req.PaymentMode),
	}
	if req.PaymentMode == domain.PaymentModeCOD {
		// The carrier wants the collectable amount in major units.
		shipment.CollectableAmount = decimal.MustNew(req.CollectableAmount, 2).String()
	}

	data, err := json.Marshal(createRequest{
		PickupLocation: c.pickup,
		Shipments:      []shipmentPayload{shipment},
	})
	if err != nil {
		return nil, fmt.Errorf("error encoding shipment payload: %w", err)
	}

	form := url.Values{}
	form.Set("format", "json")
	form.Set("client", c.clientName)
	form.Set("data", string(data))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/cmu/create.json", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("error building shipment request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Authorization", "Token "+c.apiKey)

	c.logger.Debug("Fire shipment create", zap.String("order", req.OrderNumber))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: shipment create: %w", domain.ErrRemoteUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: courier rejected credentials", domain.ErrConfiguration)
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: courier status %d", domain.ErrRemoteUnavailable, resp.StatusCode)
	default:
		return nil, fmt.Errorf("bad courier response %d for order %s", resp.StatusCode, req.OrderNumber)
	}

	var result createResponse
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("error on response decode: %w", err)
	}

	if len(result.Packages) == 0 {
		if isWarehouseMismatch(result.Remark) {
			return nil, fmt.Errorf("%w: pickup location not registered with courier: %s",
				domain.ErrConfiguration, result.Remark)
		}
		return nil, fmt.Errorf("courier accepted no packages for order %s: %s",
			req.OrderNumber, result.Remark)
	}

	pkg := result.Packages[0]
	for _, remark := range pkg.Remarks {
		if isWarehouseMismatch(remark) {
			return nil, fmt.Errorf("%w: pickup location not registered with courier: %s",
				domain.ErrConfiguration, remark)
		}
	}

	return &domain.ShipmentResult{
		Waybill:     pkg.Waybill,
		Serviceable: pkg.Serviceable,
		RawStatus:   pkg.Status,
	}, nil
}

// isWarehouseMismatch detects the carrier's rejection of an unregistered
// pickup location, which operators must fix in config rather than retry.
func isWarehouseMismatch(remark string) bool {
	lower := strings.ToLower(remark)
	return strings.Contains(lower, "clientwarehouse") ||
		strings.Contains(lower, "pickup location")
}

type trackResponse struct {
	ShipmentData []struct {
		Shipment struct {
			AWB                  string `json:"AWB"`
			Destination          string `json:"Destination"`
			PromisedDeliveryDate string `json:"PromisedDeliveryDate"`
			Status               struct {
				Status         string `json:"Status"`
				StatusLocation string `json:"StatusLocation"`
				StatusType     string `json:"StatusType"`
				Instructions   string `json:"Instructions"`
			} `json:"Status"`
		} `json:"Shipment"`
	} `json:"ShipmentData"`
}

func (c *Client) TrackShipment(ctx context.Context, waybill string) (*domain.TrackingStatus, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/v1/packages/json/?waybill="+url.QueryEscape(waybill), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("error building tracking request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Token "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: shipment tracking: %w", domain.ErrRemoteUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrShipmentNotFound
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: courier status %d", domain.ErrRemoteUnavailable, resp.StatusCode)
	default:
		return nil, fmt.Errorf("bad courier response %d for waybill %s", resp.StatusCode, waybill)
	}

	var result trackResponse
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("error on response decode: %w", err)
	}

	if len(result.ShipmentData) == 0 {
		return nil, domain.ErrShipmentNotFound
	}

	shipment := result.ShipmentData[0].Shipment

	return &domain.TrackingStatus{
		Waybill:      shipment.AWB,
		Status:       shipment.Status.Status,
		StatusType:   shipment.Status.StatusType,
		Location:     shipment.Status.StatusLocation,
		Destination:  shipment.Destination,
		PromisedDate: shipment.PromisedDeliveryDate,
		Instructions: shipment.Status.Instructions,
	}, nil
}

type cancelRequest struct {
	Waybill      string `json:"waybill"`
	Cancellation string `json:"cancellation"`
	Reason       string `json:"reason,omitempty"`
}

func (c *Client) CancelShipment(ctx context.Context, waybill string, reason string) error {
	body, err := json.Marshal(cancelRequest{
		Waybill:      waybill,
		Cancellation: "true",
		Reason:       reason,
	})
	if err != nil {
		return fmt.Errorf("error encoding cancel request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/p/edit", strings.NewReader(string(body)))
	if err != nil {
		return fmt.Errorf("error building cancel request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Token "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: shipment cancel: %w", domain.ErrRemoteUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrShipmentNotFound
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: courier status %d", domain.ErrRemoteUnavailable, resp.StatusCode)
	default:
		return fmt.Errorf("bad courier response %d for waybill %s", resp.StatusCode, waybill)
	}
}
