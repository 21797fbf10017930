// Package errors provides structured errors for the dungeon runner service.
//
// Every error carries a Code that maps onto a gRPC status code, an optional
// Reason naming a specific reward-engine failure, a user facing Message, a
// wrapped Cause and free-form Meta.
//
// Creating errors:
//
//	err := errors.NotFoundf("level %s not found", id)
//	err := errors.NoMatch("style_adjective", []string{"all", "armour"})
//
// Wrapping keeps code, reason and meta:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load level")
//	}
//
// Checking:
//
//	if errors.IsNotFound(err) { ... }
//	if errors.IsDegenerateBias(err) { ... }
//	if errors.Is(err, errors.FailedPrecondition("").WithReason(errors.ReasonNoMatch)) { ... }
//
// Handlers convert at the transport boundary with ToGRPCError; clients
// recover the structured error with FromGRPCError.
//
// Config validation uses the builder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Client == nil {
//	    vb.RequiredField("Client")
//	}
//	return vb.Build()
package errors
