package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/legends-of-revenue/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestErrorString() {
	s.Run("without cause", func() {
		err := errors.NotFound("enemy not found")
		s.Equal("NOT_FOUND: enemy not found", err.Error())
	})

	s.Run("with cause", func() {
		err := errors.Wrap(stderrors.New("boom"), "failed to save")
		s.Equal("INTERNAL: failed to save: boom", err.Error())
	})
}

func (s *ErrorsTestSuite) TestWrapKeepsCode() {
	base := errors.FailedPrecondition("not in combat")
	wrapped := errors.Wrap(base, "attack rejected")

	s.Equal(errors.CodeFailedPrecondition, wrapped.Code)
	s.True(errors.IsFailedPrecondition(wrapped))
	s.True(stderrors.Is(wrapped, base))
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "ignored"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeInternal, "ignored"))
}

func (s *ErrorsTestSuite) TestWrapWithCodeCopiesMeta() {
	base := errors.NotFound("missing").WithMeta("item_id", "tax-bomb")
	wrapped := errors.WrapWithCode(base, errors.CodeInvalidArgument, "bad item")

	s.Equal(errors.CodeInvalidArgument, wrapped.Code)
	s.Equal("tax-bomb", errors.GetMeta(wrapped)["item_id"])
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(stderrors.New("plain")))
	s.Equal(errors.CodeNotFound, errors.GetCode(errors.NotFoundf("tile %s", "x")))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	s.Equal("", errors.GetMessage(nil))
	s.Equal("plain", errors.GetMessage(stderrors.New("plain")))
	s.Equal("no pending question", errors.GetMessage(errors.FailedPrecondition("no pending question")))
}

func (s *ErrorsTestSuite) TestToGRPCError() {
	testCases := []struct {
		name     string
		err      error
		expected codes.Code
	}{
		{name: "not found", err: errors.NotFound("x"), expected: codes.NotFound},
		{name: "invalid argument", err: errors.InvalidArgument("x"), expected: codes.InvalidArgument},
		{name: "failed precondition", err: errors.FailedPrecondition("x"), expected: codes.FailedPrecondition},
		{name: "plain error", err: stderrors.New("x"), expected: codes.Internal},
		{name: "wrapped", err: errors.Wrap(errors.AlreadyExists("x"), "ctx"), expected: codes.AlreadyExists},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			st, ok := status.FromError(errors.ToGRPCError(tc.err))
			s.Require().True(ok)
			s.Equal(tc.expected, st.Code())
		})
	}

	s.Nil(errors.ToGRPCError(nil))
}

func (s *ErrorsTestSuite) TestFromGRPCError() {
	err := errors.FromGRPCError(status.Error(codes.NotFound, "character not found"))
	s.True(errors.IsNotFound(err))
	s.Equal("character not found", errors.GetMessage(err))

	plain := stderrors.New("not grpc")
	s.Equal(plain, errors.FromGRPCError(plain))
}
