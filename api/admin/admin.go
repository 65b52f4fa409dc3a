// Package admin serves read-only views of the spreadsheet store.
package admin

import (
	"errors"
	"strconv"

	"github.com/forgoes/gilbert/api"
	"github.com/forgoes/gilbert/store"
)

const defaultLimit = 20

func limit(c *api.Context) (int, *api.Error) {
	raw := c.GinCtx.DefaultQuery("limit", strconv.Itoa(defaultLimit))
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, api.InvalidArgument([]interface{}{raw}, "limit must be a positive integer")
	}
	return n, nil
}

// Memory lists memories matching the topic query, or the latest ones.
func Memory(c *api.Context) (interface{}, *api.Error) {
	n, e := limit(c)
	if e != nil {
		return nil, e
	}

	ctx := c.GinCtx.Request.Context()
	var (
		memories []store.MemoryEntry
		err      error
	)
	if topic := c.GinCtx.Query("topic"); topic != "" {
		memories, err = c.Runtime.Store.Recall(ctx, topic, n)
	} else {
		memories, err = c.Runtime.Store.RecentMemories(ctx, n)
	}
	if err != nil {
		return nil, api.StoreUnavailableError(err)
	}
	if memories == nil {
		memories = []store.MemoryEntry{}
	}
	return memories, nil
}

func Clients(c *api.Context) (interface{}, *api.Error) {
	clients, err := c.Runtime.Store.Clients(c.GinCtx.Request.Context())
	if err != nil {
		return nil, api.StoreUnavailableError(err)
	}
	return clients, nil
}

type onboardingView struct {
	Client store.Client           `json:"client"`
	Steps  []store.OnboardingStep `json:"steps"`
}

func Onboarding(c *api.Context) (interface{}, *api.Error) {
	ctx := c.GinCtx.Request.Context()
	name := c.GinCtx.Param("name")

	client, err := c.Runtime.Store.FindClient(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return nil, api.NotFoundError("client " + name + " not found")
	}
	if err != nil {
		return nil, api.StoreUnavailableError(err)
	}

	steps, err := c.Runtime.Store.Onboarding(ctx, client.Name)
	if err != nil {
		return nil, api.StoreUnavailableError(err)
	}
	if steps == nil {
		steps = []store.OnboardingStep{}
	}
	return onboardingView{Client: client, Steps: steps}, nil
}
