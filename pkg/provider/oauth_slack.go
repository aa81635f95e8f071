package provider

import (
	"errors"

	"golang.org/x/oauth2"
)

const (
	slackAuthURL  = "https://slack.com/oauth/v2/authorize"
	slackTokenURL = "https://slack.com/api/oauth.v2.access"
)

// errSlackNotOK is returned when Slack answers 200 with "ok": false.
var errSlackNotOK = errors.New("slack response is not ok")

// NewSlack returns the Slack adapter.
//
// Read documentation here: https://api.slack.com/authentication/oauth-v2
func NewSlack(opts ...Option) *OAuth {
	return NewOAuth(Endpoint{
		Provider:  Slack,
		AuthURL:   slackAuthURL,
		TokenURL:  slackTokenURL,
		AuthStyle: oauth2.AuthStyleInParams,
		Check:     checkSlack,
	}, opts...)
}

// checkSlack rejects responses where Slack reports failure in the body.
func checkSlack(tokens Tokens) error {
	if ok, present := tokens["ok"].(bool); present && !ok {
		return errSlackNotOK
	}
	return nil
}
