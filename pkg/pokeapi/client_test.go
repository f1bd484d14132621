package pokeapi_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/notjagan/moveset/pkg/model"
	"github.com/notjagan/moveset/pkg/pokeapi"
)

type recorder struct {
	mu   sync.Mutex
	last *http.Request
}

func (rec *recorder) Last() *http.Request {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.last
}

func newServer(t *testing.T) (*httptest.Server, *recorder) {
	t.Helper()

	rec := &recorder{}
	mux := http.NewServeMux()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.mu.Lock()
		rec.last = r.Clone(r.Context())
		rec.mu.Unlock()
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	serve := func(path, body string) {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, body)
		})
	}

	mux.HandleFunc("/version-group/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("offset") == "1" {
			fmt.Fprint(w, `{"count": 2, "next": null, "results": [
				{"name": "yellow", "url": "`+srv.URL+`/version-group/2/"}
			]}`)
			return
		}
		fmt.Fprintf(w, `{"count": 2, "next": %q, "results": [
			{"name": "red-blue", "url": "%s/version-group/1/"}
		]}`, srv.URL+"/version-group/?offset=1&limit=1", srv.URL)
	})
	serve("/version-group/red-blue/", `{
		"id": 1, "name": "red-blue",
		"generation": {"name": "generation-i", "url": "https://pokeapi.co/api/v2/generation/1/"}
	}`)
	serve("/generation/2/", `{
		"id": 2, "name": "generation-ii",
		"types": [
			{"name": "steel", "url": "https://pokeapi.co/api/v2/type/9/"},
			{"name": "dark", "url": "https://pokeapi.co/api/v2/type/17/"},
			{"name": "unknown", "url": "https://pokeapi.co/api/v2/type/10001/"}
		]
	}`)
	serve("/pokemon/pikachu/", `{
		"id": 25, "name": "pikachu",
		"moves": [{
			"move": {"name": "surf", "url": "https://pokeapi.co/api/v2/move/57/"},
			"version_group_details": [
				{"level_learned_at": 0, "move_learn_method": {"name": "stadium-surfing-pikachu", "url": ""}, "version_group": {"name": "yellow", "url": ""}},
				{"level_learned_at": 0, "move_learn_method": {"name": "machine", "url": ""}, "version_group": {"name": "x-y", "url": ""}}
			]
		}, {
			"move": {"name": "quick-attack", "url": "https://pokeapi.co/api/v2/move/98/"},
			"version_group_details": [
				{"level_learned_at": 16, "move_learn_method": {"name": "level-up", "url": ""}, "version_group": {"name": "red-blue", "url": ""}}
			]
		}]
	}`)
	serve("/pokemon/missingno/", `{"id": 0, "name": "missingno", "moves": [{
		"move": {"name": "glitch", "url": ""},
		"version_group_details": [
			{"level_learned_at": 0, "move_learn_method": {"name": "osmosis", "url": ""}, "version_group": {"name": "red-blue", "url": ""}}
		]
	}]}`)
	serve("/move/growl/", `{
		"id": 45, "name": "growl", "power": null,
		"type": {"name": "normal", "url": "https://pokeapi.co/api/v2/type/1/"}
	}`)
	serve("/move/surf/", `{
		"id": 57, "name": "surf", "power": 90,
		"type": {"name": "water", "url": "https://pokeapi.co/api/v2/type/11/"}
	}`)
	serve("/type/ghost/", `{
		"id": 8, "name": "ghost",
		"damage_relations": {
			"double_damage_to": [{"name": "ghost", "url": ""}, {"name": "psychic", "url": ""}],
			"half_damage_to": [{"name": "dark", "url": ""}]
		},
		"past_damage_relations": [{
			"generation": {"name": "generation-i", "url": ""},
			"damage_relations": {"double_damage_to": [{"name": "ghost", "url": ""}]}
		}, {
			"generation": {"name": "generation-v", "url": ""},
			"damage_relations": {"double_damage_to": [{"name": "ghost", "url": ""}, {"name": "psychic", "url": ""}]}
		}]
	}`)
	mux.HandleFunc("/move/broken/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	return srv, rec
}

func TestVersionGroupNamesPaginates(t *testing.T) {
	srv, _ := newServer(t)
	c := pokeapi.New(srv.URL)

	names, err := c.VersionGroupNames(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(names, []string{"red-blue", "yellow"}) {
		t.Fatalf("expected [red-blue yellow], got %v", names)
	}
}

func TestVersionGroupGeneration(t *testing.T) {
	srv, _ := newServer(t)
	c := pokeapi.New(srv.URL)

	vg, err := c.VersionGroup(context.Background(), "red-blue")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vg.ID != 1 || vg.GenerationName != "generation-i" {
		t.Fatalf("unexpected version group %+v", vg)
	}

	gen, err := model.ParseGenerationName(vg.GenerationName)
	if err != nil || gen != 1 {
		t.Fatalf("expected generation 1, got %d (%v)", gen, err)
	}
}

func TestGenerationTypeIDs(t *testing.T) {
	srv, _ := newServer(t)
	c := pokeapi.New(srv.URL)

	gen, err := c.Generation(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []model.TypeRef{{ID: 9, Name: "steel"}, {ID: 17, Name: "dark"}, {ID: 10001, Name: "unknown"}}
	if !slices.Equal(gen.Types, want) {
		t.Fatalf("expected %v, got %v", want, gen.Types)
	}
	if !gen.Types[2].IsSpecial() {
		t.Errorf("unknown should be special")
	}
}

func TestPokemon(t *testing.T) {
	srv, _ := newServer(t)
	c := pokeapi.New(srv.URL)

	pikachu, err := c.Pokemon(context.Background(), "pikachu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pikachu.Moves) != 2 {
		t.Fatalf("expected 2 moves, got %d", len(pikachu.Moves))
	}

	surf := pikachu.Moves[0]
	if surf.Name != "surf" || len(surf.Details) != 2 {
		t.Fatalf("unexpected move %+v", surf)
	}
	if surf.Details[0].Method != model.StadiumSurfingPikachu || surf.Details[0].VersionGroup != "yellow" {
		t.Errorf("unexpected detail %+v", surf.Details[0])
	}

	lvl := pikachu.Moves[1].Details[0].LevelLearned()
	if lvl == nil || *lvl != 16 {
		t.Errorf("expected quick-attack at level 16, got %v", lvl)
	}
}

func TestPokemonUnknownLearnMethod(t *testing.T) {
	srv, _ := newServer(t)
	c := pokeapi.New(srv.URL)

	if _, err := c.Pokemon(context.Background(), "missingno"); err == nil {
		t.Fatalf("expected an error for an unknown learn method")
	}
}

func TestMovePower(t *testing.T) {
	srv, _ := newServer(t)
	c := pokeapi.New(srv.URL)

	growl, err := c.Move(context.Background(), "growl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if growl.Power != nil || growl.Damaging() {
		t.Errorf("growl should have no power")
	}

	surf, err := c.Move(context.Background(), "surf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if surf.Power == nil || *surf.Power != 90 || surf.Type != "water" {
		t.Errorf("unexpected move %+v", surf)
	}
}

func TestTypeRelations(t *testing.T) {
	srv, _ := newServer(t)
	c := pokeapi.New(srv.URL)

	ghost, err := c.Type(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(ghost.DoubleDamageTo, []string{"ghost", "psychic"}) {
		t.Errorf("unexpected current relations %v", ghost.DoubleDamageTo)
	}
	if !slices.Equal(ghost.PastGenerations(), []int{1, 5}) {
		t.Errorf("expected past generations [1 5], got %v", ghost.PastGenerations())
	}
	if !slices.Equal(ghost.Past[0].DoubleDamageTo, []string{"ghost"}) {
		t.Errorf("unexpected generation 1 relations %v", ghost.Past[0].DoubleDamageTo)
	}
}

func TestNotFound(t *testing.T) {
	srv, _ := newServer(t)
	c := pokeapi.New(srv.URL)

	if _, err := c.Pokemon(context.Background(), "agumon"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServerError(t *testing.T) {
	srv, _ := newServer(t)
	c := pokeapi.New(srv.URL)

	_, err := c.Move(context.Background(), "broken")
	if err == nil || errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected a non-404 error, got %v", err)
	}
}

func TestHeaders(t *testing.T) {
	srv, rec := newServer(t)
	c := pokeapi.New(srv.URL+"/", pokeapi.WithUserAgent("moveset-test"), pokeapi.WithRequestID("run-1"))

	if _, err := c.Move(context.Background(), "surf"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := rec.Last()
	if req.URL.Path != "/move/surf/" {
		t.Errorf("unexpected path %q", req.URL.Path)
	}
	if got := req.Header.Get("User-Agent"); got != "moveset-test" {
		t.Errorf("expected user agent moveset-test, got %q", got)
	}
	if got := req.Header.Get("X-Request-ID"); got != "run-1" {
		t.Errorf("expected request id run-1, got %q", got)
	}
}

func TestTimeoutLeavesSharedClientAlone(t *testing.T) {
	srv, _ := newServer(t)
	shared := &http.Client{Timeout: time.Minute}

	c := pokeapi.New(srv.URL, pokeapi.WithHTTPClient(shared), pokeapi.WithTimeout(time.Second))
	if _, err := c.Move(context.Background(), "surf"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shared.Timeout != time.Minute {
		t.Fatalf("expected the shared client to keep its timeout, got %v", shared.Timeout)
	}
}
