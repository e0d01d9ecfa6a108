// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package xo

import (
	"fmt"
	"strings"
)

// game states
const (
	StateP1Next = "P1-NEXT"
	StateP2Next = "P2-NEXT"
	StateP1Win  = "P1-WIN"
	StateP2Win  = "P2-WIN"
	StateTie    = "TIE"
)

const emptyBoard = "---------"

// Game - one stored game
type Game struct {
	Name    string
	Board   string
	State   string
	Player1 string
	Player2 string
}

var winningLines = [][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// NewGame - empty board, first player to move
func NewGame(name string) *Game {
	return &Game{
		Name:  name,
		Board: emptyBoard,
		State: StateP1Next,
	}
}

// Pack - stored form
func (g *Game) Pack() []byte {
	return []byte(strings.Join([]string{g.Name, g.Board, g.State, g.Player1, g.Player2}, ","))
}

// UnpackGame - inverse of Pack
func UnpackGame(data []byte) (*Game, error) {
	fields := strings.Split(string(data), ",")
	if 5 != len(fields) {
		return nil, fmt.Errorf("game record has %d fields", len(fields))
	}
	g := &Game{
		Name:    fields[0],
		Board:   fields[1],
		State:   fields[2],
		Player1: fields[3],
		Player2: fields[4],
	}
	if len(emptyBoard) != len(g.Board) {
		return nil, fmt.Errorf("game: %s  board: %q", g.Name, g.Board)
	}
	return g, nil
}

// Ended - no more moves allowed
func (g *Game) Ended() bool {
	switch g.State {
	case StateP1Win, StateP2Win, StateTie:
		return true
	default:
		return false
	}
}

// Take - mark a space (1..9) for the signer
//
// the first two players to take a space are bound to the game
func (g *Game) Take(space int, signer string) error {
	if g.Ended() {
		return fmt.Errorf("game: %s has ended", g.Name)
	}
	if space < 1 || space > len(g.Board) {
		return fmt.Errorf("space: %d out of range", space)
	}

	if "" == g.Player1 {
		g.Player1 = signer
	} else if "" == g.Player2 {
		g.Player2 = signer
	}

	if '-' != g.Board[space-1] {
		return fmt.Errorf("space: %d already taken", space)
	}

	var mark byte
	switch {
	case StateP1Next == g.State && signer == g.Player1:
		mark = 'X'
		g.State = StateP2Next
	case StateP2Next == g.State && signer == g.Player2:
		mark = 'O'
		g.State = StateP1Next
	default:
		return fmt.Errorf("not this player's turn: %s", signer)
	}

	board := []byte(g.Board)
	board[space-1] = mark
	g.Board = string(board)

	switch {
	case g.isWin('X'):
		g.State = StateP1Win
	case g.isWin('O'):
		g.State = StateP2Win
	case !strings.Contains(g.Board, "-"):
		g.State = StateTie
	}
	return nil
}

func (g *Game) isWin(mark byte) bool {
	for _, line := range winningLines {
		if mark == g.Board[line[0]] && mark == g.Board[line[1]] && mark == g.Board[line[2]] {
			return true
		}
	}
	return false
}

// Display - the board as three rows
func (g *Game) Display() string {
	b := strings.ReplaceAll(g.Board, "-", " ")
	return fmt.Sprintf(
		" %c | %c | %c\n---|---|---\n %c | %c | %c\n---|---|---\n %c | %c | %c\n",
		b[0], b[1], b[2], b[3], b[4], b[5], b[6], b[7], b[8],
	)
}
