package memetree_test

import (
	"fmt"
	"log"
	"net/http/httptest"

	memetree "github.com/memetree/memetree.go"
	"github.com/memetree/memetree.go/internal/faketax"
)

func Example() {
	srv := faketax.New()
	srv.AddUser("root", "secret")
	srv.AddOpco("PKT", "Pocket", "en")
	ts := httptest.NewServer(srv)
	defer ts.Close()

	c := memetree.New(ts.URL)
	if _, err := c.Signin("root", "secret"); err != nil {
		log.Fatal(err)
	}

	// Without a slug the server derives one from the name.
	cat, err := c.Categories.Create("PKT", "Mexican Restaurants", memetree.CreateOpts{})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(cat.Slug)
	fmt.Println(cat.Key())
	// Output:
	// mexican-restaurants
	// category:PKT:mexican-restaurants
}

func ExampleDuplicate() {
	srv := faketax.New()
	srv.AddUser("root", "secret")
	srv.AddOpco("PKT", "Pocket", "en")
	ts := httptest.NewServer(srv)
	defer ts.Close()

	c := memetree.New(ts.URL)
	if _, err := c.Signin("root", "secret"); err != nil {
		log.Fatal(err)
	}

	if _, err := c.Categories.Create("PKT", "Tacos", memetree.CreateOpts{}); err != nil {
		log.Fatal(err)
	}
	_, err := c.Categories.Create("PKT", "Tacos", memetree.CreateOpts{})
	if dup, ok := memetree.Duplicate(err); ok {
		// The pre-existing entity rides along on the conflict, so there is
		// no need to re-query it.
		fmt.Println(dup.Key())
	}
	// Output:
	// category:PKT:tacos
}
