package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/RobertWHurst/validaros"
	"github.com/RobertWHurst/validaros/middleware/session"
	"github.com/RobertWHurst/validaros/middleware/validate"
	"github.com/RobertWHurst/velaros"
	jsonMiddleware "github.com/RobertWHurst/velaros/middleware/json"
)

func main() {
	router := velaros.NewRouter()
	router.Use(jsonMiddleware.Middleware())

	store := session.NewMemoryStore(10 * time.Minute)
	defer store.Close()

	router.UseOpen(session.Middleware(store, session.WithTTL(time.Hour)))
	router.UseClose(session.CloseMiddleware(store))

	// The first two comma-separated values must be integers, anything after
	// that is kept as a string.
	coordsParser, err := validaros.NewTupleParser(
		[]validaros.ValueParser{validaros.IntParser, validaros.IntParser},
		validaros.StringParser,
		validaros.Comma,
	)
	if err != nil {
		panic(err)
	}

	schema := validaros.NewSchema(
		validaros.Field{
			Name:     "id",
			Source:   validaros.FromParams,
			Required: true,
			Parser:   validaros.IntParser,
		},
		validaros.Field{
			Name:     "coords",
			Source:   validaros.FromData,
			Required: true,
			Parser:   coordsParser,
		},
		validaros.Field{
			Name:       "sort",
			Source:     validaros.FromData,
			Validators: []validaros.Validator{validaros.OneOf("asc", "desc")},
		},
	)

	router.Bind("/points/:id", validate.Middleware(schema), func(ctx *velaros.Context) {
		sess, _ := session.From(ctx)

		id, _ := validate.Value(ctx, "id")
		coords, _ := validate.Value(ctx, "coords")

		sess.Set("lastPointID", id)

		err := ctx.Send(map[string]any{
			"id":      id,
			"coords":  coords,
			"session": sess.ID,
		})
		if err != nil {
			fmt.Println("Error sending point:", err)
		}
	})

	http.Handle("/", router)
	fmt.Println("Starting server on port 8167")
	if err := http.ListenAndServe(":8167", nil); err != nil {
		fmt.Println("Error starting server:", err)
	}
}
