package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (suite *ErrorTestSuite) TestNewError() {
	err := New(ErrCodeInvalidParameter, "invalid parameter")
	suite.NotNil(err)
	suite.Equal(ErrCodeInvalidParameter, err.Code)
	suite.Equal("invalid parameter", err.Message)
	suite.Nil(err.Cause)
}

func (suite *ErrorTestSuite) TestNewfError() {
	err := Newf(ErrCodeInvalidParameter, "invalid parameter: %s", "test")
	suite.NotNil(err)
	suite.Equal(ErrCodeInvalidParameter, err.Code)
	suite.Equal("invalid parameter: test", err.Message)
	suite.Nil(err.Cause)
}

func (suite *ErrorTestSuite) TestWrapError() {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeDataUnavailable, "no bars loaded", cause)
	suite.NotNil(err)
	suite.Equal(ErrCodeDataUnavailable, err.Code)
	suite.Equal("no bars loaded", err.Message)
	suite.Equal(cause, err.Cause)
}

func (suite *ErrorTestSuite) TestWrapfError() {
	cause := errors.New("underlying error")
	err := Wrapf(ErrCodeDataUnavailable, cause, "no bars loaded for symbol: %s", "AAPL")
	suite.NotNil(err)
	suite.Equal(ErrCodeDataUnavailable, err.Code)
	suite.Equal("no bars loaded for symbol: AAPL", err.Message)
	suite.Equal(cause, err.Cause)
}

func (suite *ErrorTestSuite) TestErrorString() {
	err := New(ErrCodeInvalidParameter, "invalid parameter")
	suite.Equal("[100] invalid parameter", err.Error())
}

func (suite *ErrorTestSuite) TestErrorStringWithCause() {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeDataUnavailable, "no bars loaded", cause)
	suite.Equal("[200] no bars loaded: underlying error", err.Error())
}

func (suite *ErrorTestSuite) TestUnwrap() {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeDataUnavailable, "no bars loaded", cause)
	suite.Equal(cause, err.Unwrap())
}

func (suite *ErrorTestSuite) TestUnwrapNil() {
	err := New(ErrCodeInvalidParameter, "invalid parameter")
	suite.Nil(err.Unwrap())
}

func (suite *ErrorTestSuite) TestGetCode() {
	err := New(ErrCodeInvalidParameter, "invalid parameter")
	suite.Equal(ErrCodeInvalidParameter, GetCode(err))
}

func (suite *ErrorTestSuite) TestGetCodeFromWrapped() {
	inner := New(ErrCodeDataUnavailable, "no bars loaded")
	err := Wrap(ErrCodeAnalysisFailed, "analysis failed", inner)
	suite.Equal(ErrCodeAnalysisFailed, GetCode(err))
}

func (suite *ErrorTestSuite) TestGetCodeFromStandardError() {
	err := errors.New("a plain error")
	suite.Equal(ErrCodeUnknown, GetCode(err))
}

func (suite *ErrorTestSuite) TestHasCode() {
	err := New(ErrCodeIndicatorNotFound, "indicator not found")
	suite.True(HasCode(err, ErrCodeIndicatorNotFound))
	suite.False(HasCode(err, ErrCodeDataUnavailable))
}

func (suite *ErrorTestSuite) TestInsufficientDataError() {
	err := NewInsufficientDataErrorf(50, 10, "AAPL", "need %d bars, got %d", 50, 10)
	suite.Equal("need 50 bars, got 10", err.Error())
	suite.Equal(50, err.Required)
	suite.Equal(10, err.Actual)
	suite.True(IsInsufficientDataError(err))
}

func (suite *ErrorTestSuite) TestInsufficientDataErrorWrapped() {
	inner := NewInsufficientDataError(20, 5, "", "insufficient data")
	err := Wrap(ErrCodeIndicatorCalculation, "calculation failed", inner)
	suite.True(IsInsufficientDataError(err))
}

func (suite *ErrorTestSuite) TestIsInsufficientDataErrorFalse() {
	err := New(ErrCodeUnknown, "something else")
	suite.False(IsInsufficientDataError(err))
}
