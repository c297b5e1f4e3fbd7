package main

import (
	"reflect"

	"github.com/gorilla/schema"

	"github.com/vancomm/lunchsweeper/internal/mines"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
	decoder.RegisterConverter(mines.Difficulty(0), convertDifficulty)
}

type point struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

type newGameArgs struct {
	Difficulty mines.Difficulty `schema:"difficulty"`
}

func convertDifficulty(s string) reflect.Value {
	d, err := mines.ParseDifficulty(s)
	if err != nil {
		return reflect.Value{}
	}
	return reflect.ValueOf(d)
}

func decodePoint(args []string) (point, error) {
	var p point
	err := decoder.Decode(&p, map[string][]string{
		"x": {args[0]},
		"y": {args[1]},
	})
	return p, err
}

func decodeNewGame(args []string) (newGameArgs, error) {
	var a newGameArgs
	src := map[string][]string{}
	if len(args) > 0 {
		src["difficulty"] = args[:1]
	}
	err := decoder.Decode(&a, src)
	return a, err
}
