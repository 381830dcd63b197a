package webhooks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-http-utils/headers"

	"github.com/eurofurence/reg-grailpay-cli/internal/interaction"
	"github.com/eurofurence/reg-grailpay-cli/internal/logging"
	"github.com/eurofurence/reg-grailpay-cli/internal/restapi/common"
	"github.com/eurofurence/reg-grailpay-cli/internal/restapi/media"
)

const (
	maxPayloadBytes   = 1 << 20
	defaultEventLimit = 50
)

type Handler struct {
	ctrl interaction.Interactor
}

func Create(router chi.Router, i interaction.Interactor) {
	h := &Handler{
		ctrl: i,
	}

	router.Post("/webhook",
		common.CreateHandler(
			h.Receive,
			h.ReceiveRequest,
			h.ReceiveResponse,
		),
	)

	router.Get("/events",
		common.CreateHandler(
			h.List,
			h.ListRequest,
			h.ListResponse,
		),
	)
}

func (h *Handler) Receive(ctx context.Context, request *ReceiveRequest, logger logging.Logger) (*ReceivedDto, error) {
	_, err := h.ctrl.ReceiveWebhookEvent(ctx, request.Payload)
	if err != nil {
		if errors.Is(err, interaction.ErrMalformedEvent) {
			return nil, fmt.Errorf("%w: %v", common.ErrBadRequest, err)
		}
		return nil, err
	}

	return &ReceivedDto{Status: "received"}, nil
}

func (h *Handler) ReceiveRequest(r *http.Request) (*ReceiveRequest, error) {
	payload, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, maxPayloadBytes))
	if err != nil {
		return nil, err
	}

	return &ReceiveRequest{Payload: payload}, nil
}

func (h *Handler) ReceiveResponse(ctx context.Context, res *ReceivedDto, w http.ResponseWriter) error {
	return writeJson(ctx, w, res)
}

func (h *Handler) List(ctx context.Context, request *ListRequest, logger logging.Logger) (*EventListDto, error) {
	events, err := h.ctrl.RecentWebhookEvents(ctx, request.Limit)
	if err != nil {
		return nil, err
	}

	result := EventListDto{Events: make([]EventDto, 0, len(events))}
	for _, ev := range events {
		result.Events = append(result.Events, eventToDto(ev))
	}

	return &result, nil
}

func (h *Handler) ListRequest(r *http.Request) (*ListRequest, error) {
	limit := defaultEventLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return nil, fmt.Errorf("invalid limit %q", raw)
		}
		limit = parsed
	}

	return &ListRequest{Limit: limit}, nil
}

func (h *Handler) ListResponse(ctx context.Context, res *EventListDto, w http.ResponseWriter) error {
	return writeJson(ctx, w, res)
}

func writeJson(ctx context.Context, w http.ResponseWriter, v interface{}) error {
	w.Header().Set(headers.ContentType, media.ContentTypeApplicationJson)
	w.WriteHeader(http.StatusOK)
	common.EncodeToJSON(w, v, logging.LoggerFromContext(ctx))
	return nil
}
