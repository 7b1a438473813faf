// Package nav parses query-string navigation targets like
// "list?type=free&page=2" or "detail?id=7&type=free" into typed per-workflow
// params. Params are parsed once at workflow entry and never re-read
// mid-workflow.
package nav

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

type Page string

const (
	PageRoot   Page = "/"
	PageList   Page = "list"
	PageDetail Page = "detail"
	PageNew    Page = "new"
	PageEdit   Page = "edit"
	PageLogin  Page = "login"

	// form submissions rendered as navigable targets
	PageDelete      Page = "delete"
	PageReply       Page = "reply"
	PageReplyDelete Page = "reply-delete"
)

type Target struct {
	Page   Page
	Params url.Values
}

func Parse(link string) (Target, error) {
	link = strings.TrimSpace(link)

	if link == "" || link == "/" {
		return Target{Page: PageRoot, Params: url.Values{}}, nil
	}

	parsed, err := url.Parse(link)
	if err != nil {
		return Target{}, fmt.Errorf("invalid link: %v", err)
	}

	page := Page(strings.TrimPrefix(parsed.Path, "/"))

	switch page {
	case PageList, PageDetail, PageNew, PageEdit, PageLogin,
		PageDelete, PageReply, PageReplyDelete:
	default:
		return Target{}, fmt.Errorf("unknown page: %s", parsed.Path)
	}

	return Target{Page: page, Params: parsed.Query()}, nil
}

type ListParams struct {
	Type    string
	Keyword string
	Page    string
}

func ListParamsFrom(values url.Values) ListParams {
	params := ListParams{
		Type:    values.Get("type"),
		Keyword: values.Get("keyword"),
		Page:    values.Get("page"),
	}
	if params.Type == "" {
		params.Type = "info"
	}
	if params.Page == "" {
		params.Page = "1"
	}
	return params
}

type DetailParams struct {
	Id   int
	Type string
}

func DetailParamsFrom(values url.Values) (DetailParams, error) {
	id, err := strconv.Atoi(values.Get("id"))
	if err != nil {
		return DetailParams{}, fmt.Errorf("invalid post id %q", values.Get("id"))
	}

	params := DetailParams{Id: id, Type: values.Get("type")}
	if params.Type == "" {
		params.Type = "info"
	}
	return params, nil
}

type NewParams struct {
	Type string
}

func NewParamsFrom(values url.Values) NewParams {
	params := NewParams{Type: values.Get("type")}
	if params.Type == "" {
		params.Type = "info"
	}
	return params
}

type EditParams struct {
	Id   int
	Type string
}

func EditParamsFrom(values url.Values) (EditParams, error) {
	detail, err := DetailParamsFrom(values)
	if err != nil {
		return EditParams{}, err
	}
	return EditParams{Id: detail.Id, Type: detail.Type}, nil
}

type ReplyParams struct {
	Id int
}

func ReplyParamsFrom(values url.Values) (ReplyParams, error) {
	id, err := strconv.Atoi(values.Get("id"))
	if err != nil {
		return ReplyParams{}, fmt.Errorf("invalid post id %q", values.Get("id"))
	}
	return ReplyParams{Id: id}, nil
}

type ReplyDeleteParams struct {
	Id      int
	ReplyId int
}

func ReplyDeleteParamsFrom(values url.Values) (ReplyDeleteParams, error) {
	id, err := strconv.Atoi(values.Get("id"))
	if err != nil {
		return ReplyDeleteParams{}, fmt.Errorf("invalid post id %q", values.Get("id"))
	}
	replyId, err := strconv.Atoi(values.Get("replyId"))
	if err != nil {
		return ReplyDeleteParams{}, fmt.Errorf("invalid reply id %q", values.Get("replyId"))
	}
	return ReplyDeleteParams{Id: id, ReplyId: replyId}, nil
}

type LoginParams struct {
	From string
}

func LoginParamsFrom(values url.Values) LoginParams {
	params := LoginParams{From: values.Get("from")}
	if params.From == "" {
		params.From = "/"
	}
	return params
}
