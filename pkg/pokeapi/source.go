package pokeapi

import (
	"context"
	"fmt"
	"strconv"

	"github.com/notjagan/moveset/pkg/model"
)

var _ model.Source = (*Client)(nil)

func (c *Client) VersionGroupNames(ctx context.Context) ([]string, error) {
	var names []string

	next := c.url("version-group") + "?limit=" + strconv.Itoa(pageLimit)
	for next != "" {
		page, err := getJSON[namedAPIResourceList](ctx, c, next)
		if err != nil {
			return nil, fmt.Errorf("could not list version groups: %w", err)
		}

		for _, vg := range page.Results {
			names = append(names, vg.Name)
		}

		next = ""
		if page.Next != nil {
			next = *page.Next
		}
	}

	return names, nil
}

func (c *Client) VersionGroup(ctx context.Context, name string) (*model.VersionGroup, error) {
	resp, err := getJSON[versionGroupResponse](ctx, c, c.url("version-group", name))
	if err != nil {
		return nil, fmt.Errorf("could not get version group %q: %w", name, err)
	}

	return resp.toModel(), nil
}

func (c *Client) Generation(ctx context.Context, id int) (*model.Generation, error) {
	resp, err := getJSON[generationResponse](ctx, c, c.url("generation", strconv.Itoa(id)))
	if err != nil {
		return nil, fmt.Errorf("could not get generation %d: %w", id, err)
	}

	return resp.toModel()
}

func (c *Client) Pokemon(ctx context.Context, name string) (*model.Pokemon, error) {
	resp, err := getJSON[pokemonResponse](ctx, c, c.url("pokemon", name))
	if err != nil {
		return nil, fmt.Errorf("could not get pokemon %q: %w", name, err)
	}

	return resp.toModel(), nil
}

func (c *Client) Move(ctx context.Context, name string) (*model.Move, error) {
	resp, err := getJSON[moveResponse](ctx, c, c.url("move", name))
	if err != nil {
		return nil, fmt.Errorf("could not get move %q: %w", name, err)
	}

	return resp.toModel(), nil
}

func (c *Client) Type(ctx context.Context, name string) (*model.Type, error) {
	resp, err := getJSON[typeResponse](ctx, c, c.url("type", name))
	if err != nil {
		return nil, fmt.Errorf("could not get type %q: %w", name, err)
	}

	return resp.toModel()
}
