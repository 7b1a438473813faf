package types

import (
	"board-cli/shared"
)

type ApiClient interface {
	Login(req shared.LoginRequest) (*shared.LoginRes, *shared.ApiError)

	ListPosts(params shared.ListPostsParams) (*shared.PostListRes, *shared.ApiError)
	GetPost(postId int) (*shared.PostRes, *shared.ApiError)
	CreatePost(req shared.CreatePostRequest) (*shared.PostRes, *shared.ApiError)
	UpdatePost(postId int, req shared.UpdatePostRequest) (*shared.PostRes, *shared.ApiError)
	DeletePost(postId int) (*shared.OkRes, *shared.ApiError)

	ListReplies(postId int) (*shared.ReplyListRes, *shared.ApiError)
	CreateReply(postId int, req shared.CreateReplyRequest) (*shared.ReplyRes, *shared.ApiError)
	DeleteReply(postId, replyId int) (*shared.OkRes, *shared.ApiError)
}
