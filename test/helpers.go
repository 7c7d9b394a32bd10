package test

import (
	"inkwell/dal"
	"inkwell/shared"
)

const localHost = "ink.dev"
const foreignHost = "far.example"

func testConfig() *shared.Config {
	return &shared.Config{
		Host: localHost,
		Delivery: shared.DeliveryConfig{
			Workers:    4,
			TimeoutSec: 5,
		},
		FeedItemCount: 20,
	}
}

func localActor(id int64, handle string) *dal.Actor {
	return &dal.Actor{Id: id, Handle: handle}
}

func privateLocalActor(id int64, handle string) *dal.Actor {
	return &dal.Actor{Id: id, Handle: handle, Private: true}
}

func foreignActor(id int64, handle string) *dal.Actor {
	return &dal.Actor{Id: id, Handle: handle, Host: foreignHost}
}

func actorIds(actors []*dal.Actor) []int64 {
	var res []int64
	for _, a := range actors {
		res = append(res, a.Id)
	}
	return res
}

func containsId(actors []*dal.Actor, id int64) bool {
	for _, a := range actors {
		if a.Id == id {
			return true
		}
	}
	return false
}
