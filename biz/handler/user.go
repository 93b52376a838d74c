package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"goalkeeper/api/biz/model/domain"
	"goalkeeper/api/biz/model/dto"
	"goalkeeper/api/biz/model/errs"
	"goalkeeper/api/biz/service/user"
	"goalkeeper/api/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type Handler struct {
	svc *user.Service
}

func New(svc *user.Service) *Handler {
	return &Handler{svc: svc}
}

// CreateUser 创建用户接口
//
//	@Tags			users
//	@Summary		创建用户接口
//	@Description	创建用户接口, 初始工资为0, 无储蓄目标
//	@Accept			json
//	@Produce		json
//	@Param			req	body		dto.CreateUserReq	true	"create user request body"
//	@Success		200	{object}	dto.UserResp
//	@Failure		409	{object}	dto.MessageResp
//	@Failure		400	{object}	dto.MessageResp
//	@Router			/users [POST]
func (h *Handler) CreateUser(ctx context.Context, c *app.RequestContext) {
	var req dto.CreateUserReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()), http.StatusBadRequest)
		return
	}

	u, bizErr := h.svc.CreateUser(ctx, req.Username, req.Password)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, userResp(u))
}

// GetUser 查询用户及储蓄目标接口
//
//	@Tags			users
//	@Summary		查询用户及储蓄目标接口
//	@Description	查询用户信息, 包含储蓄目标明细与每月储蓄总额
//	@Produce		json
//	@Param			username	path		string	true	"username"
//	@Success		200			{object}	dto.UserGoalsResp
//	@Failure		404			{object}	dto.MessageResp
//	@Failure		400			{object}	dto.MessageResp
//	@Router			/users/{username} [GET]
func (h *Handler) GetUser(ctx context.Context, c *app.RequestContext) {
	username := c.Param("username")

	out, bizErr := h.svc.GetUserWithGoals(ctx, username)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	goals := make([]dto.SavingGoalResp, 0, len(out.Goals))
	for _, g := range out.Goals {
		goals = append(goals, goalResp(&g))
	}

	resp.SuccessResp(c, dto.UserGoalsResp{
		Username:     out.User.Username,
		Password:     out.User.Password,
		Goals:        goals,
		Salary:       out.User.Salary,
		TotalSavings: out.TotalSavings,
		CreatedAt:    out.User.CreatedAt.Format(dto.TimeLayout),
	})
}

// DeleteUser 删除用户接口
//
//	@Tags			users
//	@Summary		删除用户接口
//	@Description	删除用户, 不级联删除远端储蓄目标
//	@Produce		json
//	@Param			username	path		string	true	"username"
//	@Success		200			{object}	dto.MessageResp
//	@Failure		404			{object}	dto.MessageResp
//	@Failure		400			{object}	dto.MessageResp
//	@Router			/users/{username} [DELETE]
func (h *Handler) DeleteUser(ctx context.Context, c *app.RequestContext) {
	username := c.Param("username")

	if bizErr := h.svc.DeleteUser(ctx, username); bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessMsg(c, fmt.Sprintf("User with username %s deleted successfully", username))
}

// RenameUser 修改用户名接口
//
//	@Tags			users
//	@Summary		修改用户名接口
//	@Description	修改用户名, 新用户名不能与现有用户重复
//	@Accept			json
//	@Produce		json
//	@Param			username	path		string				true	"username"
//	@Param			req			body		dto.RenameUserReq	true	"rename request body"
//	@Success		200			{object}	dto.UserResp
//	@Failure		404			{object}	dto.MessageResp
//	@Failure		409			{object}	dto.MessageResp
//	@Failure		400			{object}	dto.MessageResp
//	@Router			/users/{username}/username [PUT]
func (h *Handler) RenameUser(ctx context.Context, c *app.RequestContext) {
	username := c.Param("username")

	var req dto.RenameUserReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()), http.StatusBadRequest)
		return
	}

	u, bizErr := h.svc.RenameUser(ctx, username, req.NewUsername)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, userResp(u))
}

// UpdateSalary 修改工资接口
//
//	@Tags			users
//	@Summary		修改工资接口
//	@Description	修改工资, 保留两位小数
//	@Accept			json
//	@Produce		json
//	@Param			username	path		string				true	"username"
//	@Param			req			body		dto.UpdateSalaryReq	true	"update salary request body"
//	@Success		200			{object}	dto.UserResp
//	@Failure		404			{object}	dto.MessageResp
//	@Failure		400			{object}	dto.MessageResp
//	@Router			/users/{username}/salary [PUT]
func (h *Handler) UpdateSalary(ctx context.Context, c *app.RequestContext) {
	username := c.Param("username")

	var req dto.UpdateSalaryReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()), http.StatusBadRequest)
		return
	}

	u, bizErr := h.svc.UpdateSalary(ctx, username, *req.NewSalary)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, userResp(u))
}

// CreateGoal 创建储蓄目标接口
//
//	@Tags			goals
//	@Summary		创建储蓄目标接口
//	@Description	在远端服务创建储蓄目标并关联到用户
//	@Accept			json
//	@Produce		json
//	@Param			username	path		string				true	"username"
//	@Param			req			body		dto.SavingGoalReq	true	"saving goal request body"
//	@Success		200			{object}	dto.UserResp
//	@Failure		404			{object}	dto.MessageResp
//	@Failure		400			{object}	dto.MessageResp
//	@Router			/users/{username}/goal [POST]
func (h *Handler) CreateGoal(ctx context.Context, c *app.RequestContext) {
	username := c.Param("username")

	var req dto.SavingGoalReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()), http.StatusBadRequest)
		return
	}

	u, bizErr := h.svc.CreateGoalForUser(ctx, username, goalSpec(req))
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, userResp(u))
}

// GetGoal 查询储蓄目标接口
//
//	@Tags			goals
//	@Summary		查询储蓄目标接口
//	@Description	查询用户的某个储蓄目标
//	@Produce		json
//	@Param			username	path		string	true	"username"
//	@Param			goal_id		path		int		true	"goal id"
//	@Success		200			{object}	dto.SavingGoalResp
//	@Failure		404			{object}	dto.MessageResp
//	@Failure		400			{object}	dto.MessageResp
//	@Router			/users/{username}/goal/{goal_id} [GET]
func (h *Handler) GetGoal(ctx context.Context, c *app.RequestContext) {
	username := c.Param("username")
	goalID, ok := parseGoalID(ctx, c)
	if !ok {
		return
	}

	g, bizErr := h.svc.GetGoalForUser(ctx, username, goalID)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, goalResp(g))
}

// DeleteGoal 删除储蓄目标接口
//
//	@Tags			goals
//	@Summary		删除储蓄目标接口
//	@Description	先删除远端储蓄目标, 确认成功后移除本地关联
//	@Produce		json
//	@Param			username	path		string	true	"username"
//	@Param			goal_id		path		int		true	"goal id"
//	@Success		200			{object}	dto.MessageResp
//	@Failure		404			{object}	dto.MessageResp
//	@Failure		400			{object}	dto.MessageResp
//	@Router			/users/{username}/goal/{goal_id} [DELETE]
func (h *Handler) DeleteGoal(ctx context.Context, c *app.RequestContext) {
	username := c.Param("username")
	goalID, ok := parseGoalID(ctx, c)
	if !ok {
		return
	}

	if bizErr := h.svc.DeleteGoalForUser(ctx, username, goalID); bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessMsg(c, fmt.Sprintf("Goal %d deleted successfully.", goalID))
}

// UpdateGoal 更新储蓄目标接口
//
//	@Tags			goals
//	@Summary		更新储蓄目标接口
//	@Description	更新远端储蓄目标, 本地关联不变
//	@Accept			json
//	@Produce		json
//	@Param			username	path		string				true	"username"
//	@Param			goal_id		path		int					true	"goal id"
//	@Param			req			body		dto.SavingGoalReq	true	"saving goal request body"
//	@Success		200			{object}	dto.SavingGoalResp
//	@Failure		404			{object}	dto.MessageResp
//	@Failure		400			{object}	dto.MessageResp
//	@Router			/users/{username}/goal/{goal_id} [PUT]
func (h *Handler) UpdateGoal(ctx context.Context, c *app.RequestContext) {
	username := c.Param("username")
	goalID, ok := parseGoalID(ctx, c)
	if !ok {
		return
	}

	var req dto.SavingGoalReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()), http.StatusBadRequest)
		return
	}

	g, bizErr := h.svc.UpdateGoalForUser(ctx, username, goalID, goalSpec(req))
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, goalResp(g))
}

func parseGoalID(ctx context.Context, c *app.RequestContext) (int64, bool) {
	goalID, err := strconv.ParseInt(c.Param("goal_id"), 10, 64)
	if err != nil {
		hlog.CtxNoticef(ctx, "invalid goal_id: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg("goal_id must be an integer"), http.StatusBadRequest)
		return 0, false
	}
	return goalID, true
}

func userResp(u *domain.User) dto.UserResp {
	return dto.UserResp{
		ID:        u.UserID,
		Username:  u.Username,
		Salary:    u.Salary,
		GoalIDs:   u.GoalIDs,
		CreatedAt: u.CreatedAt.Format(dto.TimeLayout),
	}
}

func goalResp(g *domain.SavingGoal) dto.SavingGoalResp {
	return dto.SavingGoalResp{
		ID:             g.ID,
		GoalName:       g.Name,
		GoalCurrency:   g.Currency,
		GoalValue:      g.GoalValue,
		MonthlySavings: g.MonthlySavings,
		ConvertedValue: g.ConvertedValue,
		CreatedAt:      g.CreatedAt,
	}
}

func goalSpec(req dto.SavingGoalReq) domain.GoalSpec {
	return domain.GoalSpec{
		Name:           req.GoalName,
		Currency:       domain.Currency(req.GoalCurrency),
		GoalValue:      req.GoalValue,
		MonthlySavings: req.MonthlySavings,
	}
}
