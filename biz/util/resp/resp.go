package resp

import (
	"net/http"

	"goalkeeper/api/biz/model/dto"
	"goalkeeper/api/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/app"
)

// statusOf maps a business error onto the HTTP status exposed by the
// surface. Anything unclassified degrades to 400, same as every other
// unexpected failure.
func statusOf(bizErr errs.Error) int {
	switch bizErr.Code() {
	case errs.UserNotFound.Code(), errs.GoalNotFound.Code():
		return http.StatusNotFound
	case errs.UsernameDuplicated.Code():
		return http.StatusConflict
	case errs.TooManyRequest.Code():
		return http.StatusTooManyRequests
	default:
		return http.StatusBadRequest
	}
}

func SuccessResp(c *app.RequestContext, data any) {
	c.JSON(http.StatusOK, data)
}

func SuccessMsg(c *app.RequestContext, msg string) {
	c.JSON(http.StatusOK, &dto.MessageResp{Message: msg})
}

func FailResp(c *app.RequestContext, bizErr errs.Error) {
	c.JSON(statusOf(bizErr), &dto.MessageResp{Message: bizErr.Msg()})
}

func AbortWithErr(c *app.RequestContext, bizErr errs.Error, httpCode int) {
	c.AbortWithStatusJSON(httpCode, &dto.MessageResp{Message: bizErr.Msg()})
}
