package client

import (
	"context"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
)

// SupportClient implements outseta.SupportClient.
type SupportClient struct {
	base *Base
}

// NewSupportClient creates a new support client.
func NewSupportClient(base *Base) *SupportClient {
	return &SupportClient{
		base: base,
	}
}

// Get implements outseta.SupportClient.Get.
func (c *SupportClient) Get(ctx context.Context, id string) (*outseta.Case, error) {
	err := requireID("case id", id)
	if err != nil {
		return nil, err
	}

	return getObject[outseta.Case](ctx, c.base, casePath(id), outseta.Params{})
}

// List implements outseta.SupportClient.List.
func (c *SupportClient) List(ctx context.Context, page *outseta.PageRequest) (*outseta.ItemPage[outseta.Case], error) {
	return getPage[outseta.Case](ctx, c.base, "/support/cases", page)
}

// Create opens a support case, optionally sending the auto responder email.
func (c *SupportClient) Create(ctx context.Context, supportCase *outseta.Case, sendAutoResponder bool) (*outseta.Case, error) {
	err := requireValue("case", supportCase)
	if err != nil {
		return nil, err
	}

	params := outseta.Params{"sendAutoResponder": strconv.FormatBool(sendAutoResponder)}

	return sendObject[outseta.Case](ctx, c.base, c.base.Post, "/support/cases", params, supportCase)
}

// AddClientResponse posts a comment from the client to a case. The comment
// travels in the path.
func (c *SupportClient) AddClientResponse(ctx context.Context, caseID, comment string) error {
	err := requireID("case id", caseID)
	if err != nil {
		return err
	}

	if strings.TrimSpace(comment) == "" {
		return outseta.InvalidArgument("comment")
	}

	_, err = c.base.Post(ctx, casePath(caseID)+"/clientresponse/"+segment(comment), outseta.Params{}, "")

	return err
}

// AddReply implements outseta.SupportClient.AddReply.
func (c *SupportClient) AddReply(ctx context.Context, caseID string, reply *outseta.CaseReply) (*outseta.Case, error) {
	err := requireID("case id", caseID)
	if err != nil {
		return nil, err
	}

	err = requireValue("reply", reply)
	if err != nil {
		return nil, err
	}

	return sendObject[outseta.Case](ctx, c.base, c.base.Post, casePath(caseID)+"/replies", outseta.Params{}, reply)
}

func casePath(id string) string {
	return "/support/cases/" + segment(id)
}
