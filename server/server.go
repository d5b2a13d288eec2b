package server

import (
	"net/http"

	"kbquery"
	"kbquery/query"

	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
)

// New routes POST /query to the adapter and answers CORS preflight requests.
func New(a *query.Adapter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), cors)

	r.POST("/query", func(c *gin.Context) {
		body, err := c.GetRawData()
		if err != nil {
			kbquery.Logger.Warn("Reading body failed", "error", err)
			body = nil
		}
		reply := a.Handle(c.Request.Context(), body)
		c.JSON(reply.StatusCode, reply.Body)
	})
	r.OPTIONS("/query", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

// NewLambda serves API Gateway proxy events through the router.
func NewLambda(a *query.Adapter) *ginadapter.GinLambda {
	return ginadapter.New(New(a))
}

func cors(c *gin.Context) {
	for k, v := range kbquery.Headers {
		if k == "Content-Type" {
			continue
		}
		c.Header(k, v)
	}
	c.Next()
}
