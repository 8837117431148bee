package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/duelhall/encounter-api/internal/errors"
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
			message:  "monster not found",
			expected: "NOT_FOUND: monster not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "invalid dice expression",
			expected: "INVALID_ARGUMENT: invalid dice expression",
		},
		{
			name:     "failed precondition error",
			code:     errors.CodeFailedPrecondition,
			message:  "combat is over",
			expected: "FAILED_PRECONDITION: combat is over",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("spell not found").
		WithMeta("spell_id", "fireball").
		WithMeta("session_id", "sess_123")

	s.Assert().Equal("fireball", err.Meta["spell_id"])
	s.Assert().Equal("sess_123", err.Meta["session_id"])
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	inner := errors.NotFound("session not found")
	wrapped := errors.Wrap(inner, "failed to load session")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("failed to load session", wrapped.Message)
	s.Assert().ErrorIs(wrapped, inner)
	s.Assert().True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	cause := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(cause, "failed to save session")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().ErrorIs(wrapped, cause)
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "no error"))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	cause := fmt.Errorf("redis: nil")
	wrapped := errors.WrapWithCode(cause, errors.CodeNotFound, "session not found")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeUnavailable, errors.GetCode(errors.Unavailable("narrator down")))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	s.Assert().Equal("", errors.GetMessage(nil))
	s.Assert().Equal("weapon not found", errors.GetMessage(errors.NotFound("weapon not found")))
	s.Assert().Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	s.Assert().NoError(vb.Build())

	vb.RequiredField("SessionRepo")
	vb.InvalidField("Level", "must be positive")

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	var structured *errors.Error
	s.Require().True(errors.As(err, &structured))
	s.Assert().Contains(structured.Meta, "validation_errors")
}

func (s *ErrorsTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("Level", 25, 1, 20, vb)
	err := vb.Build()
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "between 1 and 20")
}
