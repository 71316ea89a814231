package lemmy

type loginRequest struct {
	UsernameOrEmail string `json:"username_or_email"`
	Password        string `json:"password"`
}

type loginResponse struct {
	JWT string `json:"jwt"`
}

type communityResponse struct {
	CommunityView struct {
		Community struct {
			ID int64 `json:"id"`
		} `json:"community"`
	} `json:"community_view"`
}

type createPostRequest struct {
	Name        string `json:"name"`
	Body        string `json:"body"`
	CommunityID int64  `json:"community_id"`
}

type editPostRequest struct {
	PostID int64  `json:"post_id"`
	Name   string `json:"name"`
	Body   string `json:"body"`
}

type featurePostRequest struct {
	PostID      int64  `json:"post_id"`
	Featured    bool   `json:"featured"`
	FeatureType string `json:"feature_type"`
}

type postResponse struct {
	PostView struct {
		Post struct {
			ID int64 `json:"id"`
		} `json:"post"`
	} `json:"post_view"`
}

type deletePostRequest struct {
	PostID  int64 `json:"post_id"`
	Deleted bool  `json:"deleted"`
}

type createCommentRequest struct {
	PostID  int64  `json:"post_id"`
	Content string `json:"content"`
}

type editCommentRequest struct {
	CommentID int64  `json:"comment_id"`
	Content   string `json:"content"`
}

type deleteCommentRequest struct {
	CommentID int64 `json:"comment_id"`
	Deleted   bool  `json:"deleted"`
}

type commentResponse struct {
	CommentView struct {
		Comment struct {
			ID int64 `json:"id"`
		} `json:"comment"`
	} `json:"comment_view"`
}
