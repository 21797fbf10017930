package errors

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	detailCodeKey    = "code"
	detailReasonKey  = "reason"
	detailMetaKey    = "meta"
	detailMessageKey = "message"
)

// ToGRPCError converts an error to a gRPC status error.
// Code, reason and meta travel as a google.protobuf.Struct detail.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if customErr.Reason == "" && len(customErr.Meta) == 0 {
		return st.Err()
	}

	details, detailErr := structpb.NewStruct(map[string]interface{}{
		detailCodeKey:    string(customErr.Code),
		detailReasonKey:  string(customErr.Reason),
		detailMessageKey: customErr.Message,
		detailMetaKey:    protoSafe(customErr.Meta),
	})
	if detailErr != nil {
		return st.Err()
	}

	withDetails, detailErr := st.WithDetails(details)
	if detailErr != nil {
		return st.Err()
	}
	return withDetails.Err()
}

// FromGRPCError converts a gRPC error to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    grpcCodeToCode(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		details, ok := detail.(*structpb.Struct)
		if !ok {
			continue
		}
		fields := details.AsMap()
		if reason, ok := fields[detailReasonKey].(string); ok {
			customErr.Reason = Reason(reason)
		}
		if meta, ok := fields[detailMetaKey].(map[string]interface{}); ok && len(meta) > 0 {
			customErr.Meta = meta
		}
		break
	}

	return customErr
}

// protoSafe flattens metadata into values structpb accepts.
func protoSafe(meta map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(meta))
	for k, v := range meta {
		switch typed := v.(type) {
		case nil, bool, string, float64, int, int32, int64:
			out[k] = typed
		case map[string][]string:
			fields := make(map[string]interface{}, len(typed))
			for field, msgs := range typed {
				list := make([]interface{}, len(msgs))
				for i, msg := range msgs {
					list[i] = msg
				}
				fields[field] = list
			}
			out[k] = fields
		default:
			out[k] = fmt.Sprint(typed)
		}
	}
	return out
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeOK:
		return codes.OK
	case CodeCanceled:
		return codes.Canceled
	case CodeInvalidArgument:
		return codes.InvalidArgument
	case CodeDeadlineExceeded:
		return codes.DeadlineExceeded
	case CodeNotFound:
		return codes.NotFound
	case CodeAlreadyExists:
		return codes.AlreadyExists
	case CodeFailedPrecondition:
		return codes.FailedPrecondition
	case CodeUnimplemented:
		return codes.Unimplemented
	case CodeInternal:
		return codes.Internal
	case CodeUnavailable:
		return codes.Unavailable
	default:
		return codes.Unknown
	}
}

// grpcCodeToCode converts a gRPC code to our error code
func grpcCodeToCode(grpcCode codes.Code) Code {
	switch grpcCode {
	case codes.OK:
		return CodeOK
	case codes.Canceled:
		return CodeCanceled
	case codes.InvalidArgument:
		return CodeInvalidArgument
	case codes.DeadlineExceeded:
		return CodeDeadlineExceeded
	case codes.NotFound:
		return CodeNotFound
	case codes.AlreadyExists:
		return CodeAlreadyExists
	case codes.FailedPrecondition:
		return CodeFailedPrecondition
	case codes.Unimplemented:
		return CodeUnimplemented
	case codes.Unavailable:
		return CodeUnavailable
	default:
		return CodeInternal
	}
}
