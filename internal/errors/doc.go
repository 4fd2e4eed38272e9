// Package errors provides structured errors for the reward engine.
//
// Errors carry a code, a user-facing message, an optional cause and a
// metadata map. Codes map onto gRPC status codes at the transport boundary.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("avatar not found")
//	err := errors.InvalidArgumentf("invalid track: %d", track)
//
// Adding metadata:
//
//	err := errors.Internal("zone has no task key").
//	    WithMeta("zone_id", zone).
//	    WithMeta("reward", reward.Kind().String())
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load avatar")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // first delivery for this avatar
//	}
//
//	code := errors.GetCode(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Constructors validate their config with the builder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Registry == nil {
//	    vb.RequiredField("Registry")
//	}
//	if err := vb.Build(); err != nil {
//	    return nil, errors.Wrap(err, "invalid config")
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return NotFound for missing avatars
//   - Wrap storage errors with context
//
// Rewards and delivery:
//   - Missing linkage table entries are Internal errors; the delivery fails
//     loudly rather than being swallowed
//   - Redundant deliveries are not errors at all
//
// Handler layer:
//   - Convert errors with ToGRPCError
package errors
