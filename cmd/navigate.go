package cmd

import (
	"fmt"
	"net/url"

	"board-cli/lib"
	"board-cli/nav"
	"board-cli/term"
)

// runTarget executes one page workflow and returns the follow-up navigation
// target, if any, plus whether the follow-up replaces the current history
// entry (login does, so back-navigation skips the login form).
func runTarget(target nav.Target) (next string, replace bool, err error) {
	switch target.Page {
	case nav.PageRoot:
		return "", false, lib.List(nav.ListParamsFrom(url.Values{}))

	case nav.PageList:
		return "", false, lib.List(nav.ListParamsFrom(target.Params))

	case nav.PageDetail:
		params, err := nav.DetailParamsFrom(target.Params)
		if err != nil {
			return "", false, err
		}
		return "", false, lib.Detail(params)

	case nav.PageNew:
		next, err := lib.Create(nav.NewParamsFrom(target.Params))
		return next, false, err

	case nav.PageEdit:
		params, err := nav.EditParamsFrom(target.Params)
		if err != nil {
			return "", false, err
		}
		next, err := lib.Edit(params)
		return next, false, err

	case nav.PageDelete:
		params, err := nav.DetailParamsFrom(target.Params)
		if err != nil {
			return "", false, err
		}
		next, err := lib.Delete(params)
		return next, false, err

	case nav.PageReply:
		params, err := nav.ReplyParamsFrom(target.Params)
		if err != nil {
			return "", false, err
		}
		return "", false, lib.AddReply(params.Id)

	case nav.PageReplyDelete:
		params, err := nav.ReplyDeleteParamsFrom(target.Params)
		if err != nil {
			return "", false, err
		}
		return "", false, lib.DeleteReply(params.Id, params.ReplyId)

	case nav.PageLogin:
		next, err := lib.Login(nav.LoginParamsFrom(target.Params))
		return next, true, err
	}

	return "", false, fmt.Errorf("unknown page: %s", target.Page)
}

// navigateTo follows a link once, then any follow-up targets the workflows
// return. Used by the one-shot commands; the browse loop keeps its own
// history.
func navigateTo(link string) {
	for link != "" {
		target, err := nav.Parse(link)
		if err != nil {
			term.OutputErrorAndExit("%v", err)
		}

		link, _, err = runTarget(target)

		if err != nil {
			term.OutputErrorAndExit("%v", err)
		}
	}
}
