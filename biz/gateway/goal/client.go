package goal

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"goalkeeper/api/biz/config"
	"goalkeeper/api/biz/model/domain"
	"goalkeeper/api/biz/util/trace_info"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/sirupsen/logrus"
)

// record mirrors the goal service's JSON payload.
type record struct {
	ID             int64   `json:"id"`
	GoalName       string  `json:"goal_name"`
	GoalCurrency   string  `json:"goal_currency"`
	GoalValue      float64 `json:"goal_value"`
	MonthlySavings float64 `json:"monthly_savings"`
	ConvertedValue float64 `json:"converted_value"`
	CreatedAt      string  `json:"created_at"`
}

// Client is the sole way the core talks to the external saving-goal service.
// Every call is a single round trip with no retry; any transport error or
// non-2xx status collapses into the same absent result.
type Client struct {
	baseURL string
	cli     *client.Client
	log     *logrus.Entry
}

func NewClient(conf config.GoalAPIConf) (*Client, error) {
	timeout := time.Duration(conf.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	cli, err := client.NewClient(
		client.WithDialTimeout(timeout),
		client.WithClientReadTimeout(timeout),
	)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL: conf.BaseURL,
		cli:     cli,
		log:     logrus.WithField("component", "goal_gateway"),
	}, nil
}

// CreateGoal posts a new goal. Returns nil when the service gave no usable
// result.
func (c *Client) CreateGoal(ctx context.Context, spec domain.GoalSpec) *domain.SavingGoal {
	req, resp := protocol.AcquireRequest(), protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodPost)
	req.SetRequestURI(c.baseURL + "/goals")
	req.SetFormData(formFields(spec))

	if !c.do(ctx, req, resp) {
		return nil
	}

	g := c.parse(resp.Body())
	if g != nil && g.ID == 0 {
		// a create record without an id is unusable, linking it would
		// leave a reference to nothing
		c.log.WithField("log_id", trace_info.LogID(ctx)).Warn("goal service create response carried no goal id")
		return nil
	}
	return g
}

// FetchGoal reads one goal by id.
func (c *Client) FetchGoal(ctx context.Context, goalID int64) *domain.SavingGoal {
	req, resp := protocol.AcquireRequest(), protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(c.goalURL(goalID))

	if !c.do(ctx, req, resp) {
		return nil
	}
	return c.parse(resp.Body())
}

// UpdateGoal replaces the goal's fields and returns the service's updated
// record.
func (c *Client) UpdateGoal(ctx context.Context, goalID int64, spec domain.GoalSpec) *domain.SavingGoal {
	req, resp := protocol.AcquireRequest(), protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodPut)
	req.SetRequestURI(c.goalURL(goalID))
	req.SetFormData(formFields(spec))

	if !c.do(ctx, req, resp) {
		return nil
	}
	return c.parse(resp.Body())
}

// DeleteGoal removes the goal remotely. False means the delete is not
// confirmed and the caller must keep its local reference.
func (c *Client) DeleteGoal(ctx context.Context, goalID int64) bool {
	req, resp := protocol.AcquireRequest(), protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodDelete)
	req.SetRequestURI(c.goalURL(goalID))

	return c.do(ctx, req, resp)
}

func (c *Client) goalURL(goalID int64) string {
	return fmt.Sprintf("%s/goals/goal_id?goal_id=%d", c.baseURL, goalID)
}

func (c *Client) do(ctx context.Context, req *protocol.Request, resp *protocol.Response) bool {
	log := c.log.WithField("log_id", trace_info.LogID(ctx))
	if err := c.cli.Do(ctx, req, resp); err != nil {
		log.WithError(err).Warnf("goal service %s %s failed", req.Method(), req.URI().String())
		return false
	}
	if resp.StatusCode() < consts.StatusOK || resp.StatusCode() >= consts.StatusMultipleChoices {
		log.Warnf("goal service %s %s returned status %d", req.Method(), req.URI().String(), resp.StatusCode())
		return false
	}
	return true
}

func (c *Client) parse(body []byte) *domain.SavingGoal {
	var rec record
	if err := sonic.Unmarshal(body, &rec); err != nil {
		c.log.WithError(err).Warn("goal service returned an unparsable body")
		return nil
	}
	return &domain.SavingGoal{
		ID:             rec.ID,
		Name:           rec.GoalName,
		Currency:       rec.GoalCurrency,
		GoalValue:      rec.GoalValue,
		MonthlySavings: rec.MonthlySavings,
		ConvertedValue: rec.ConvertedValue,
		CreatedAt:      rec.CreatedAt,
	}
}

func formFields(spec domain.GoalSpec) map[string]string {
	return map[string]string{
		"goal_name":       spec.Name,
		"goal_currency":   string(spec.Currency),
		"goal_value":      strconv.FormatFloat(spec.GoalValue, 'f', -1, 64),
		"monthly_savings": strconv.FormatFloat(spec.MonthlySavings, 'f', -1, 64),
	}
}
