/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package multiplayer

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGameReturnsGameID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/reversi/v1/create_game", r.URL.Path)
		var req gameRequest
		body, _ := ioutil.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "player-1", req.PlayerID)
		json.NewEncoder(w).Encode(newGameResponse{Result: NewGameResult{GameID: "game-42"}})
	}))
	defer srv.Close()

	c := New(srv.URL+"/", "player-1")
	result := c.CreateGame()

	assert.Equal(t, "game-42", result.GameID)
}

func TestGameListExcludesOwnGames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(gameListResponse{Result: []Game{
			{GameID: "a", FirstPlayer: "me"},
			{GameID: "b", FirstPlayer: "other"},
		}})
	}))
	defer srv.Close()

	c := New(srv.URL+"/", "me")
	ids := c.GameList()

	require.Len(t, ids, 1)
	assert.Equal(t, "b", ids[0])
}

func TestMoveSubmitsAlgebraicNotation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req moveRequest
		body, _ := ioutil.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "d3", req.Move)
		json.NewEncoder(w).Encode(moveResponse{Result: MoveResult{Accepted: true}})
	}))
	defer srv.Close()

	c := New(srv.URL+"/", "player-1")
	result := c.Move("game-42", "d3")

	assert.True(t, result.Accepted)
}

func TestPostWithRetryRecoversAfterTransportFailure(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(gameStatusResponse{Result: GameStatusResult{Status: StatusBlack}})
	}))
	defer srv.Close()

	c := New(srv.URL+"/", "player-1")
	status := c.GameStatus("game-42")

	assert.Equal(t, StatusBlack, status.Status)
	assert.Equal(t, int32(2), atomic.LoadInt32(&attempts))
}

func TestWaitForOpponentReturnsOnceNotPending(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := StatusPending
		if atomic.AddInt32(&calls, 1) >= 2 {
			status = StatusBlack
		}
		json.NewEncoder(w).Encode(gameStatusResponse{Result: GameStatusResult{Status: status}})
	}))
	defer srv.Close()

	c := New(srv.URL+"/", "player-1")
	result := c.WaitForOpponent("game-42")

	assert.Equal(t, StatusBlack, result.Status)
}
