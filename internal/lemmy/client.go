package lemmy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Feature scope for pinned posts. The bot only ever pins within its own
// community, never instance-wide.
const featureTypeCommunity = "Community"

// Config holds the connection parameters for one Lemmy instance.
type Config struct {
	Instance  string
	Username  string
	Password  string
	Community string
	Timeout   time.Duration
}

// Client publishes posts and comments to a single Lemmy community. It logs
// in once at construction and reuses the session token for all calls.
type Client struct {
	httpClient  *http.Client
	instance    string
	token       string
	communityID int64
	logger      *slog.Logger
}

// New logs into the instance and resolves the target community. A failed
// login or an unknown community is a hard error: nothing can be published
// without them.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	c := &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		instance: cfg.Instance,
		logger:   logger.With("instance", cfg.Instance, "community", cfg.Community),
	}

	if err := c.login(ctx, cfg.Username, cfg.Password); err != nil {
		return nil, fmt.Errorf("login as %s: %w", cfg.Username, err)
	}
	if err := c.resolveCommunity(ctx, cfg.Community); err != nil {
		return nil, fmt.Errorf("resolve community %s: %w", cfg.Community, err)
	}

	c.logger.Info("connected to lemmy", "community_id", c.communityID)
	return c, nil
}

func (c *Client) login(ctx context.Context, username, password string) error {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/api/v3/user/login", loginRequest{
		UsernameOrEmail: username,
		Password:        password,
	}, &resp)
	if err != nil {
		return err
	}
	if resp.JWT == "" {
		return fmt.Errorf("login response carried no token")
	}
	c.token = resp.JWT
	return nil
}

func (c *Client) resolveCommunity(ctx context.Context, name string) error {
	var resp communityResponse
	path := "/api/v3/community?name=" + url.QueryEscape(name)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return err
	}
	if resp.CommunityView.Community.ID == 0 {
		return fmt.Errorf("community not found")
	}
	c.communityID = resp.CommunityView.Community.ID
	return nil
}

// CreatePost publishes a new post in the community and returns its ID.
func (c *Client) CreatePost(ctx context.Context, title, body string) (int64, error) {
	var resp postResponse
	err := c.do(ctx, http.MethodPost, "/api/v3/post", createPostRequest{
		Name:        title,
		Body:        body,
		CommunityID: c.communityID,
	}, &resp)
	if err != nil {
		return 0, fmt.Errorf("create post: %w", err)
	}
	c.logger.Info("created post", "post_id", resp.PostView.Post.ID, "title", title)
	return resp.PostView.Post.ID, nil
}

// EditPost replaces the title and body of an existing post.
func (c *Client) EditPost(ctx context.Context, postID int64, title, body string) error {
	err := c.do(ctx, http.MethodPut, "/api/v3/post", editPostRequest{
		PostID: postID,
		Name:   title,
		Body:   body,
	}, nil)
	if err != nil {
		return fmt.Errorf("edit post %d: %w", postID, err)
	}
	return nil
}

// FeaturePost pins or unpins a post within the community.
func (c *Client) FeaturePost(ctx context.Context, postID int64, featured bool) error {
	err := c.do(ctx, http.MethodPost, "/api/v3/post/feature", featurePostRequest{
		PostID:      postID,
		Featured:    featured,
		FeatureType: featureTypeCommunity,
	}, nil)
	if err != nil {
		return fmt.Errorf("feature post %d: %w", postID, err)
	}
	c.logger.Info("set post feature flag", "post_id", postID, "featured", featured)
	return nil
}

// DeletePost removes a post. The bot never deletes on its own; this exists
// for operator cleanup.
func (c *Client) DeletePost(ctx context.Context, postID int64) error {
	err := c.do(ctx, http.MethodPost, "/api/v3/post/delete", deletePostRequest{
		PostID:  postID,
		Deleted: true,
	}, nil)
	if err != nil {
		return fmt.Errorf("delete post %d: %w", postID, err)
	}
	return nil
}

// CreateComment publishes a top-level comment under a post and returns the
// comment ID.
func (c *Client) CreateComment(ctx context.Context, postID int64, body string) (int64, error) {
	var resp commentResponse
	err := c.do(ctx, http.MethodPost, "/api/v3/comment", createCommentRequest{
		PostID:  postID,
		Content: body,
	}, &resp)
	if err != nil {
		return 0, fmt.Errorf("create comment on post %d: %w", postID, err)
	}
	c.logger.Info("created comment", "comment_id", resp.CommentView.Comment.ID, "post_id", postID)
	return resp.CommentView.Comment.ID, nil
}

// EditComment replaces the body of an existing comment.
func (c *Client) EditComment(ctx context.Context, commentID int64, body string) error {
	err := c.do(ctx, http.MethodPut, "/api/v3/comment", editCommentRequest{
		CommentID: commentID,
		Content:   body,
	}, nil)
	if err != nil {
		return fmt.Errorf("edit comment %d: %w", commentID, err)
	}
	return nil
}

// DeleteComment removes a comment. Operator cleanup only, as with DeletePost.
func (c *Client) DeleteComment(ctx context.Context, commentID int64) error {
	err := c.do(ctx, http.MethodPost, "/api/v3/comment/delete", deleteCommentRequest{
		CommentID: commentID,
		Deleted:   true,
	}, nil)
	if err != nil {
		return fmt.Errorf("delete comment %d: %w", commentID, err)
	}
	return nil
}

// PostURL returns the public URL of a post on this instance.
func (c *Client) PostURL(postID int64) string {
	return fmt.Sprintf("%s/post/%d", c.instance, postID)
}

// CommentURL returns the public URL of a comment on this instance.
func (c *Client) CommentURL(commentID int64) string {
	return fmt.Sprintf("%s/comment/%d", c.instance, commentID)
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.instance+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "gdtbot/1.0")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, msg)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
