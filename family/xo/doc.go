// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package xo - tic-tac-toe as a transaction family
//
// payload: "name,action,space" where action is create, take or delete
// and space is 1..9 for take
//
// each game is stored under the address of its name as
// "name,board,state,player1,player2"; the board is nine characters of
// '-', 'X' or 'O' read left to right, top to bottom
package xo
