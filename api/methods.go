package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"board-cli/shared"
)

func (a *Api) Login(req shared.LoginRequest) (*shared.LoginRes, *shared.ApiError) {
	serverUrl := apiHost + "/login"

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, &shared.ApiError{Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	resp, err := apiClient.Post(serverUrl, "application/json", bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, &shared.ApiError{Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	return decodeRes[shared.LoginRes](resp)
}

func (a *Api) ListPosts(params shared.ListPostsParams) (*shared.PostListRes, *shared.ApiError) {
	queryParams := url.Values{}
	queryParams.Set("type", params.Type)
	queryParams.Set("keyword", params.Keyword)
	queryParams.Set("page", params.Page)
	queryParams.Set("limit", params.Limit)

	serverUrl := apiHost + "/posts?" + queryParams.Encode()

	resp, err := apiClient.Get(serverUrl)
	if err != nil {
		return nil, &shared.ApiError{Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	return decodeRes[shared.PostListRes](resp)
}

func (a *Api) GetPost(postId int) (*shared.PostRes, *shared.ApiError) {
	serverUrl := fmt.Sprintf("%s/posts/%d", apiHost, postId)

	resp, err := apiClient.Get(serverUrl)
	if err != nil {
		return nil, &shared.ApiError{Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	return decodeRes[shared.PostRes](resp)
}

func (a *Api) CreatePost(req shared.CreatePostRequest) (*shared.PostRes, *shared.ApiError) {
	serverUrl := apiHost + "/posts"

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, &shared.ApiError{Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	resp, err := apiClient.Post(serverUrl, "application/json", bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, &shared.ApiError{Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	return decodeRes[shared.PostRes](resp)
}

func (a *Api) UpdatePost(postId int, req shared.UpdatePostRequest) (*shared.PostRes, *shared.ApiError) {
	serverUrl := fmt.Sprintf("%s/posts/%d", apiHost, postId)

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, &shared.ApiError{Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	request, err := http.NewRequest(http.MethodPatch, serverUrl, bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, &shared.ApiError{Msg: fmt.Sprintf("error creating request: %v", err)}
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := apiClient.Do(request)
	if err != nil {
		return nil, &shared.ApiError{Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	return decodeRes[shared.PostRes](resp)
}

func (a *Api) DeletePost(postId int) (*shared.OkRes, *shared.ApiError) {
	serverUrl := fmt.Sprintf("%s/posts/%d", apiHost, postId)

	request, err := http.NewRequest(http.MethodDelete, serverUrl, nil)
	if err != nil {
		return nil, &shared.ApiError{Msg: fmt.Sprintf("error creating request: %v", err)}
	}

	resp, err := apiClient.Do(request)
	if err != nil {
		return nil, &shared.ApiError{Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	return decodeRes[shared.OkRes](resp)
}

func (a *Api) ListReplies(postId int) (*shared.ReplyListRes, *shared.ApiError) {
	serverUrl := fmt.Sprintf("%s/posts/%d/replies", apiHost, postId)

	resp, err := apiClient.Get(serverUrl)
	if err != nil {
		return nil, &shared.ApiError{Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	return decodeRes[shared.ReplyListRes](resp)
}

func (a *Api) CreateReply(postId int, req shared.CreateReplyRequest) (*shared.ReplyRes, *shared.ApiError) {
	serverUrl := fmt.Sprintf("%s/posts/%d/replies", apiHost, postId)

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, &shared.ApiError{Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	resp, err := apiClient.Post(serverUrl, "application/json", bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, &shared.ApiError{Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	return decodeRes[shared.ReplyRes](resp)
}

func (a *Api) DeleteReply(postId, replyId int) (*shared.OkRes, *shared.ApiError) {
	serverUrl := fmt.Sprintf("%s/posts/%d/replies/%d", apiHost, postId, replyId)

	request, err := http.NewRequest(http.MethodDelete, serverUrl, nil)
	if err != nil {
		return nil, &shared.ApiError{Msg: fmt.Sprintf("error creating request: %v", err)}
	}

	resp, err := apiClient.Do(request)
	if err != nil {
		return nil, &shared.ApiError{Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	return decodeRes[shared.OkRes](resp)
}
