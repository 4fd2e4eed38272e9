package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/LittlestCube/toontown-archipelago/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "avatar not found",
			expected: "NOT_FOUND: avatar not found",
		},
		{
			name:     "internal error",
			code:     errors.CodeInternal,
			message:  "zone has no task key",
			expected: "INTERNAL: zone has no task key",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.Internal("zone has no task key").
		WithMeta("zone_id", 2000).
		WithMeta("reward", "task_access")

	s.Equal(2000, err.Meta["zone_id"])
	s.Equal("task_access", err.Meta["reward"])

	err2 := errors.NotFound("avatar not found").
		WithMetaMap(map[string]interface{}{
			"avatar_id": "toon_1",
			"sequence":  4,
		})

	s.Equal("toon_1", err2.Meta["avatar_id"])
	s.Equal(4, err2.Meta["sequence"])
}

func (s *ErrorsTestSuite) TestWrap() {
	s.Run("plain errors become internal", func() {
		baseErr := fmt.Errorf("connection refused")
		wrapped := errors.Wrap(baseErr, "failed to load avatar")

		s.Equal(errors.CodeInternal, wrapped.Code)
		s.Equal("failed to load avatar", wrapped.Message)
		s.Equal(baseErr, wrapped.Unwrap())
	})

	s.Run("structured errors keep their code", func() {
		baseErr := errors.NotFound("no such key")
		wrapped := errors.Wrap(baseErr, "avatar not found")

		s.Equal(errors.CodeNotFound, wrapped.Code)
		s.Equal(baseErr, wrapped.Unwrap())
	})

	s.Run("explicit code overrides", func() {
		baseErr := fmt.Errorf("redis: connection pool timeout")
		wrapped := errors.WrapWithCode(baseErr, errors.CodeUnavailable, "guard unavailable")

		s.Equal(errors.CodeUnavailable, wrapped.Code)
		s.Equal(baseErr, wrapped.Unwrap())
	})

	s.Run("nil stays nil", func() {
		s.Nil(errors.Wrap(nil, "should be nil"))
		s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
	})
}

func (s *ErrorsTestSuite) TestFormattedConstructors() {
	err := errors.NotFoundf("avatar %s not found", "toon_1")
	s.Equal(errors.CodeNotFound, err.Code)
	s.Equal("avatar toon_1 not found", err.Message)

	err2 := errors.InvalidArgumentf("invalid track: %d", 9)
	s.Equal(errors.CodeInvalidArgument, err2.Code)
	s.Equal("invalid track: 9", err2.Message)

	err3 := errors.FailedPreconditionf("avatar %s has not won", "toon_1")
	s.Equal(errors.CodeFailedPrecondition, err3.Code)
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.NotFound("test")
	err2 := errors.NotFound("other")
	err3 := errors.InvalidArgument("test")

	s.True(err1.Is(err2))
	s.False(err1.Is(err3))
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	notFoundErr := errors.NotFound("test")
	wrappedErr := errors.Wrap(notFoundErr, "wrapped")

	s.True(errors.IsNotFound(notFoundErr))
	s.True(errors.IsNotFound(wrappedErr))
	s.False(errors.IsNotFound(errors.Internal("test")))
	s.True(errors.IsInternal(fmt.Errorf("plain")))
	s.True(errors.IsAlreadyExists(errors.AlreadyExists("test")))
	s.True(errors.IsFailedPrecondition(errors.FailedPrecondition("test")))

	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal("value", errors.GetMeta(errors.Wrap(notFoundErr.WithMeta("key", "value"), "x"))["key"])
	s.Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestGRPCConversion() {
	err := errors.Internal("zone has no task key").
		WithMeta("zone_id", 2000)

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.Internal, st.Code())
	s.Equal("zone has no task key", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.Equal(errors.CodeInternal, errors.GetCode(back))
	s.Equal(float64(2000), errors.GetMeta(back)["zone_id"])

	plain := errors.FromGRPCError(status.Error(codes.InvalidArgument, "invalid input"))
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(plain))
	s.Equal("invalid input", errors.GetMessage(plain))
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeAlreadyExists, codes.AlreadyExists},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition},
		{errors.CodeInternal, codes.Internal},
		{errors.CodeUnavailable, codes.Unavailable},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}
