package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the flat JSON body of every response:
// {"error": bool, "message": "...", ...payload}.
type Envelope map[string]any

func build(failed bool, message string, payload gin.H) Envelope {
	env := make(Envelope, len(payload)+2)
	for k, v := range payload {
		env[k] = v
	}
	env["error"] = failed
	if message != "" {
		env["message"] = message
	}
	return env
}

// Success writes a non-error envelope merged with payload.
func Success(ctx *gin.Context, status int, message string, payload gin.H) Envelope {
	if status == 0 {
		status = http.StatusOK
	}
	env := build(false, message, payload)
	ctx.JSON(status, env)
	return env
}

// Error writes an error envelope.
func Error(ctx *gin.Context, status int, message string) Envelope {
	if status == 0 {
		status = http.StatusBadRequest
	}
	env := build(true, message, nil)
	ctx.JSON(status, env)
	return env
}

// Abort writes an error envelope and stops the handler chain.
func Abort(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, build(true, message, nil))
}
