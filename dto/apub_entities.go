package dto

import (
	"encoding/json"
	"fmt"
)

const ActivityContext = "https://www.w3.org/ns/activitystreams"

// ActivityOut is the envelope of an outbound activity. Envelope fields
// (Context, To) are only set on sendable activities; an activity embedded
// inside another one (e.g. the Follow inside an Undo) carries neither.
type ActivityOut struct {
	Context   any       `json:"@context,omitempty"`
	Id        string    `json:"id,omitempty"`
	Type      string    `json:"type"`
	Actor     string    `json:"actor"`
	Published string    `json:"published,omitempty"`
	To        *[]string `json:"to,omitempty"`
	Object    any       `json:"object,omitempty"`
}

// Sendable reports whether the activity carries a full envelope.
func (act *ActivityOut) Sendable() bool {
	return act.Context != nil
}

// ArticleObject is the wire representation of an article, used as the
// object of Create, Update, Delete and Announce activities.
type ArticleObject struct {
	Type         string `json:"type"`
	Id           string `json:"id"`
	Name         string `json:"name"`
	Published    string `json:"published"`
	AttributedTo string `json:"attributedTo"`
	Content      string `json:"content"`
	Summary      string `json:"summary,omitempty"`
	Url          string `json:"url,omitempty"`
}

// ActorDoc is the public actor document served for local actors and
// fetched for foreign ones.
type ActorDoc struct {
	Context           any    `json:"@context"`
	Id                string `json:"id"`
	Type              string `json:"type"`
	PreferredUserName string `json:"preferredUsername"`
	Name              string `json:"name"`
	Summary           string `json:"summary"`
	ManuallyApproves  bool   `json:"manuallyApprovesFollowers"`
	Inbox             string `json:"inbox"`
	Outbox            string `json:"outbox"`
	Followers         string `json:"followers"`
	Following         string `json:"following"`
}

// WebfingerResp answers the acct: resource lookup peers use to discover
// an actor's identity URL.
type WebfingerResp struct {
	Subject string          `json:"subject"`
	Aliases []string        `json:"aliases"`
	Links   []WebfingerLink `json:"links"`
}

type WebfingerLink struct {
	Rel  string `json:"rel"`
	Type string `json:"type,omitempty"`
	Href string `json:"href,omitempty"`
}

func getRecipient(raw any) ([]string, error) {
	var res []string
	if raw == nil {
		return res, nil
	}
	if slice, ok := raw.([]interface{}); ok {
		for _, s := range slice {
			if str, ok := s.(string); ok {
				res = append(res, str)
			} else {
				return res, fmt.Errorf("list of recipients must only contain strings")
			}
		}
	} else if str, ok := raw.(string); ok {
		res = []string{str}
	} else {
		return res, fmt.Errorf("to must be single string or array of strings")
	}
	return res, nil
}

// ActivityInBase is an inbound activity with its object left opaque; used
// to decide which handler gets the raw body.
type ActivityInBase struct {
	Id     string   `json:"id"`
	Type   string   `json:"type"`
	Actor  string   `json:"actor"`
	To     []string `json:"-"`
	RawTo  any      `json:"to"`
	Object any      `json:"object"`
}

func (x *ActivityInBase) UnmarshalJSON(data []byte) error {
	var err error
	type Y ActivityInBase
	var y = (*Y)(x)
	if err = json.Unmarshal(data, y); err != nil {
		return err
	}
	if y.To, err = getRecipient(y.RawTo); err != nil {
		return err
	}
	return nil
}

// ActivityIn is an inbound activity with a typed object.
type ActivityIn[T any] struct {
	Id     string   `json:"id"`
	Type   string   `json:"type"`
	Actor  string   `json:"actor"`
	To     []string `json:"-"`
	RawTo  any      `json:"to"`
	Object T        `json:"object"`
}

func (x *ActivityIn[T]) UnmarshalJSON(data []byte) error {
	var err error
	type Y ActivityIn[T]
	var y = (*Y)(x)
	if err = json.Unmarshal(data, y); err != nil {
		return err
	}
	if y.To, err = getRecipient(y.RawTo); err != nil {
		return err
	}
	return nil
}
