package handler

import (
	"fmt"
	"strconv"

	"github.com/raddit-dev/raddit/internal/api"
	"github.com/raddit-dev/raddit/internal/comments"
	"github.com/raddit-dev/raddit/internal/domain"
)

// parseIntParam parses an integer parameter from a string and returns a meaningful error
func parseIntParam(param string, paramName string) (int64, error) {
	val, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: must be an integer", paramName)
	}
	return val, nil
}

func (h *Handler) threadResponse(t domain.Thread) api.ThreadResponse {
	return api.ThreadResponse{
		Thread:          t,
		DescriptionHtml: h.text.RenderPlain(t.Description),
	}
}

// renderTree turns the flat comment table into the nested response
// shape, one rendered node per reachable comment.
func (h *Handler) renderTree(t domain.Thread, cs []domain.Comment) []*api.CommentResponse {
	return h.renderNodes(comments.BuildTree(cs), cs, t.Creator.UserName)
}

func (h *Handler) renderNodes(nodes []*comments.Node, cs []domain.Comment, op string) []*api.CommentResponse {
	vis := h.comment.Visibility()
	out := make([]*api.CommentResponse, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, &api.CommentResponse{
			Comment:      n.Comment,
			ContentHtml:  h.text.RenderComment(n.Comment.Content),
			IsOp:         n.Comment.Creator.UserName == op,
			Expanded:     vis.Expanded(n.Comment.Id),
			TotalReplies: comments.TotalReplyCount(cs, n.Comment.Id),
			Replies:      h.renderNodes(n.Replies, cs, op),
		})
	}
	return out
}
