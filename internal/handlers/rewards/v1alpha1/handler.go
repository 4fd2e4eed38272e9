// Package v1alpha1 handles the reward delivery grpc service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/LittlestCube/toontown-archipelago/internal/errors"
	"github.com/LittlestCube/toontown-archipelago/internal/orchestrators/delivery"
)

// HandlerConfig holds dependencies for the reward handler
type HandlerConfig struct {
	DeliveryService delivery.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.DeliveryService == nil {
		return errors.InvalidArgument("delivery service is required")
	}
	return nil
}

// Handler implements the reward gRPC service
type Handler struct {
	deliveryService delivery.Service
}

// NewHandler creates a new reward handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		deliveryService: cfg.DeliveryService,
	}, nil
}

// Ensure Handler implements the service interface
var _ RewardServiceServer = (*Handler)(nil)

// DeliverItems applies a received-items batch
func (h *Handler) DeliverItems(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in DeliverItemsRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.AvatarID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("avatar_id is required"))
	}

	items := make([]delivery.Item, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, item.toItem())
	}

	out, err := h.deliveryService.DeliverItems(ctx, &delivery.DeliverItemsInput{
		AvatarID:   in.AvatarID,
		StartIndex: in.StartIndex,
		Items:      items,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &DeliverItemsResponse{
		Results: make([]*ItemResultMessage, 0, len(out.Results)),
		Toon:    out.Toon,
	}
	for _, r := range out.Results {
		resp.Results = append(resp.Results, convertResult(r))
	}

	return respond(resp)
}

// DeliverItem applies one item at an explicit sequence index
func (h *Handler) DeliverItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in DeliverItemRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.AvatarID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("avatar_id is required"))
	}

	out, err := h.deliveryService.DeliverItem(ctx, &delivery.DeliverItemInput{
		AvatarID:      in.AvatarID,
		SequenceIndex: in.SequenceIndex,
		Item:          in.Item.toItem(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&DeliverItemResponse{Result: convertResult(out.Result), Toon: out.Toon})
}

// ClaimVictory records the victory location once the goal is met
func (h *Handler) ClaimVictory(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in AvatarRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.AvatarID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("avatar_id is required"))
	}

	out, err := h.deliveryService.ClaimVictory(ctx, &delivery.ClaimVictoryInput{AvatarID: in.AvatarID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&ClaimVictoryResponse{LocationID: out.LocationID, Toon: out.Toon})
}

// CreateAvatar creates a toon with starting stats
func (h *Handler) CreateAvatar(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in AvatarRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	out, err := h.deliveryService.CreateAvatar(ctx, &delivery.CreateAvatarInput{
		AvatarID: in.AvatarID,
		Name:     in.Name,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&AvatarResponse{Toon: out.Toon})
}

// GetAvatar retrieves a toon
func (h *Handler) GetAvatar(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in AvatarRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.AvatarID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("avatar_id is required"))
	}

	out, err := h.deliveryService.GetAvatar(ctx, &delivery.GetAvatarInput{AvatarID: in.AvatarID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&AvatarResponse{Toon: out.Toon})
}

// ListNotifications returns the toon's latest notifications
func (h *Handler) ListNotifications(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in ListNotificationsRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.AvatarID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("avatar_id is required"))
	}

	out, err := h.deliveryService.ListNotifications(ctx, &delivery.ListNotificationsInput{
		AvatarID: in.AvatarID,
		Limit:    in.Limit,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &ListNotificationsResponse{
		Notifications: make([]*NotificationMessage, 0, len(out.Notifications)),
	}
	for _, n := range out.Notifications {
		resp.Notifications = append(resp.Notifications, convertNotification(n))
	}

	return respond(resp)
}

func respond(msg any) (*structpb.Struct, error) {
	out, err := Encode(msg)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}
