/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package multiplayer is a thin HTTP client for the reversi/v1 multiplayer
// server: game discovery, creation, joining, move submission and status
// polling. Transport failures are retried indefinitely with a 1-second
// backoff; the search core never sees them.
package multiplayer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/frankkopp/ReversiGo/franky_logging"
)

var log = franky_logging.GetLog("multiplayer")

const retryBackoff = 1 * time.Second

// Status values a GameStatusResult.Status can hold.
const (
	StatusPending   = "pending"
	StatusBlack     = "black"
	StatusWhite     = "white"
	StatusBlackWon  = "black_won"
	StatusWhiteWon  = "white_won"
)

// Client talks to one multiplayer server instance on behalf of one player.
type Client struct {
	APIURL     string
	PlayerUUID string
	HTTP       *http.Client
}

// New builds a Client. apiURL must include a trailing slash, matching the
// wire protocol's "<api_url>reversi/v1/..." path construction.
func New(apiURL, playerUUID string) *Client {
	return &Client{APIURL: apiURL, PlayerUUID: playerUUID, HTTP: &http.Client{Timeout: 10 * time.Second}}
}

type gameRequest struct {
	PlayerID string `json:"player_id"`
}

type gameIDRequest struct {
	PlayerID string `json:"player_id"`
	GameID   string `json:"game_id"`
}

type moveRequest struct {
	PlayerID string `json:"player_id"`
	GameID   string `json:"game_id"`
	Move     string `json:"move"`
}

// Game describes one entry of the game_list response.
type Game struct {
	GameID      string `json:"game_id"`
	FirstPlayer string `json:"first_player"`
}

type gameListResponse struct {
	Result []Game `json:"result"`
}

// NewGameResult is the result of create_game.
type NewGameResult struct {
	GameID string `json:"game_id"`
}

type newGameResponse struct {
	Result NewGameResult `json:"result"`
}

// GameJoinResult is the result of join.
type GameJoinResult struct {
	GameID string `json:"game_id"`
	Color  string `json:"color"`
}

type gameJoinResponse struct {
	Result GameJoinResult `json:"result"`
}

// MoveResult is the result of move.
type MoveResult struct {
	Accepted bool   `json:"accepted"`
	Status   string `json:"status"`
}

type moveResponse struct {
	Result MoveResult `json:"result"`
}

// GameStatusResult is the result of game_status.
type GameStatusResult struct {
	Status   string `json:"status"`
	LastMove string `json:"last_move"`
}

type gameStatusResponse struct {
	Result GameStatusResult `json:"result"`
}

func (c *Client) post(endpoint string, body, out interface{}) error {
	url := c.APIURL + "reversi/v1/" + endpoint
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("multiplayer: marshal request for %s: %w", endpoint, err)
	}
	resp, err := c.HTTP.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("multiplayer: %s returned status %d", endpoint, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// postWithRetry calls post repeatedly, retrying every transport failure
// with a fixed 1-second backoff - the multiplayer channel never surfaces a
// transport error to the caller.
func (c *Client) postWithRetry(endpoint string, body, out interface{}) {
	for {
		if err := c.post(endpoint, body, out); err != nil {
			log.Warningf("multiplayer: %s failed, retrying: %v", endpoint, err)
			time.Sleep(retryBackoff)
			continue
		}
		return
	}
}

// GameList returns the ids of open games not created by this player.
func (c *Client) GameList() []string {
	var resp gameListResponse
	c.postWithRetry("game_list", gameRequest{PlayerID: c.PlayerUUID}, &resp)
	var ids []string
	for _, g := range resp.Result {
		if g.FirstPlayer != c.PlayerUUID {
			ids = append(ids, g.GameID)
		}
	}
	return ids
}

// CreateGame starts a new game and returns its id.
func (c *Client) CreateGame() NewGameResult {
	var resp newGameResponse
	c.postWithRetry("create_game", gameRequest{PlayerID: c.PlayerUUID}, &resp)
	return resp.Result
}

// Join joins an existing game by id.
func (c *Client) Join(gameID string) GameJoinResult {
	var resp gameJoinResponse
	c.postWithRetry("join", gameIDRequest{PlayerID: c.PlayerUUID, GameID: gameID}, &resp)
	return resp.Result
}

// Move submits a move in algebraic notation (or "pass"/"resign").
func (c *Client) Move(gameID, move string) MoveResult {
	var resp moveResponse
	c.postWithRetry("move", moveRequest{PlayerID: c.PlayerUUID, GameID: gameID, Move: move}, &resp)
	return resp.Result
}

// GameStatus polls the current status of a game.
func (c *Client) GameStatus(gameID string) GameStatusResult {
	var resp gameStatusResponse
	c.postWithRetry("game_status", gameIDRequest{PlayerID: c.PlayerUUID, GameID: gameID}, &resp)
	return resp.Result
}

// WaitForOurTurn polls game_status until it is our turn (status == myColor)
// or the game has ended.
func (c *Client) WaitForOurTurn(gameID, myColor string) GameStatusResult {
	for {
		status := c.GameStatus(gameID)
		if status.Status == myColor || status.Status == StatusBlackWon || status.Status == StatusWhiteWon {
			return status
		}
		time.Sleep(500 * time.Millisecond)
	}
}

// WaitForOpponent polls game_status until a second player has joined (the
// game leaves the "pending" state).
func (c *Client) WaitForOpponent(gameID string) GameStatusResult {
	for {
		status := c.GameStatus(gameID)
		if status.Status != StatusPending {
			return status
		}
		time.Sleep(500 * time.Millisecond)
	}
}
