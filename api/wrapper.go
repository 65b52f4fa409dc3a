package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/forgoes/gilbert/code"
	"github.com/forgoes/gilbert/runtime"
)

type Payload struct {
	Code    code.Code     `json:"code"`
	Message string        `json:"message"`
	Details []interface{} `json:"details"`
}

type Error struct {
	Status  int
	Payload *Payload
}

type Handler func(c *Context) (interface{}, *Error)

type DataType int

const (
	DataTypeJson     DataType = iota // JSON rendered from the handler's value
	DataTypePlainStr                 // plain text
)

type WrapConfig struct {
	RespDataType DataType
}

func WithDataType(t DataType) func(config *WrapConfig) {
	return func(w *WrapConfig) {
		w.RespDataType = t
	}
}

type Context struct {
	Runtime  *runtime.Runtime
	GinCtx   *gin.Context
	IsLogin  bool
	UserName string
	UserRole string
}

const tokenPrefix = "token "

var errNoKey = errors.New("no signing key configured")

func parseToken(token string, key []byte) (*JWTClaims, error) {
	if len(key) == 0 {
		return nil, errNoKey
	}
	tokenClaims, err := jwt.ParseWithClaims(token, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if tokenClaims == nil {
		return nil, errors.New("invalid claims")
	}

	claims, ok := tokenClaims.Claims.(*JWTClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	if !tokenClaims.Valid {
		return nil, errors.New("invalid claims")
	}

	return claims, nil
}

// Wrap
// success:               status - 200
// bad request:           status - 400
// unauthorized:          status - 401
// internal server error: status - 500
// service unavailable:   status - 503
func Wrap(h Handler, rt *runtime.Runtime, loginRequired bool, opts ...func(*WrapConfig)) gin.HandlerFunc {
	w := &WrapConfig{
		RespDataType: DataTypeJson,
	}

	for _, opt := range opts {
		opt(w)
	}

	return func(gCtx *gin.Context) {
		c := Context{
			Runtime: rt,
			GinCtx:  gCtx,
		}

		if loginRequired {
			authToken := gCtx.GetHeader("Authorization")
			if len(authToken) <= len(tokenPrefix) {
				e := StatusUnauthorizedError(code.MissingToken)
				gCtx.AbortWithStatusJSON(e.Status, e.Payload)
				return
			}
			token := authToken[len(tokenPrefix):]
			claims, err := parseToken(token, []byte(rt.Config.Jwt.Key))
			if err != nil {
				e := StatusUnauthorizedError(code.InvalidToken)
				gCtx.AbortWithStatusJSON(e.Status, e.Payload)
				return
			}
			c.IsLogin = true
			c.UserName = claims.UserName
			c.UserRole = claims.UserRole
		}

		data, err := h(&c)

		if err != nil {
			gCtx.JSON(err.Status, err.Payload)
		} else {
			switch w.RespDataType {
			case DataTypeJson:
				gCtx.JSON(http.StatusOK, data)
			case DataTypePlainStr:
				gCtx.String(http.StatusOK, data.(string))
			default:
				gCtx.JSON(http.StatusOK, data)
			}
		}
	}
}

func InvalidArgument(details []interface{}, messages ...string) *Error {
	if len(messages) > 0 {
		return &Error{
			Status: http.StatusBadRequest,
			Payload: &Payload{
				Code:    code.InvalidArgument,
				Message: messages[0],
				Details: details,
			},
		}
	}

	return &Error{
		Status: http.StatusBadRequest,
		Payload: &Payload{
			Code:    code.InvalidArgument,
			Message: code.InvalidArgument.String(),
			Details: details,
		},
	}
}

func InternalServerError(messages ...string) *Error {
	if len(messages) > 0 {
		return &Error{
			Status: http.StatusInternalServerError,
			Payload: &Payload{
				Code:    code.InternalError,
				Message: messages[0],
			},
		}
	}

	return &Error{
		Status: http.StatusInternalServerError,
		Payload: &Payload{
			Code:    code.InternalError,
			Message: "500 Internal Server Error",
		},
	}
}

func StatusUnauthorizedError(c code.IdentityCode, messages ...string) *Error {
	msg := c.String()
	if len(messages) > 0 {
		msg = messages[0]
	}

	return &Error{
		Status: http.StatusUnauthorized,
		Payload: &Payload{
			Code:    code.Code(c),
			Message: msg,
		},
	}
}

func NotFoundError(messages ...string) *Error {
	if len(messages) > 0 {
		return &Error{
			Status: http.StatusNotFound,
			Payload: &Payload{
				Code:    code.NotFoundError,
				Message: messages[0],
			},
		}
	}

	return &Error{
		Status: http.StatusNotFound,
		Payload: &Payload{
			Code:    code.NotFoundError,
			Message: code.NotFoundError.String(),
		},
	}
}

// StoreUnavailableError reports a failed spreadsheet call; the cause goes in
// the details.
func StoreUnavailableError(err error) *Error {
	return &Error{
		Status: http.StatusServiceUnavailable,
		Payload: &Payload{
			Code:    code.Code(code.StoreUnavailable),
			Message: code.StoreUnavailable.String(),
			Details: []interface{}{err.Error()},
		},
	}
}
