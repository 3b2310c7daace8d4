package loom_test

import (
	"fmt"
	"strings"

	"github.com/loomkit/loom"
)

func Example() {
	c := loom.New()

	_ = c.RegisterFactory("greeting", func(*loom.Container, string, loom.Options) (any, error) {
		return "hello", nil
	})
	_ = c.RegisterFactory("announcer", func(inner *loom.Container, _ string, _ loom.Options) (any, error) {
		greeting, err := inner.Get("greeting")
		if err != nil {
			return nil, err
		}
		return strings.ToUpper(greeting.(string)) + "!", nil
	})

	announcement, _ := c.Get("announcer")
	fmt.Println(announcement)
	// Output: HELLO!
}

func ExampleContainer_Get_shared() {
	c := loom.New()

	builds := 0
	_ = c.RegisterFactory("db", func(*loom.Container, string, loom.Options) (any, error) {
		builds++
		return fmt.Sprintf("connection #%d", builds), nil
	})

	first, _ := c.Get("db")
	second, _ := c.Get("db")
	fresh, _ := c.Build("db", nil)

	fmt.Println(first)
	fmt.Println(second)
	fmt.Println(fresh)
	// Output:
	// connection #1
	// connection #1
	// connection #2
}

func ExampleContainer_RegisterDelegator() {
	c := loom.New()

	_ = c.RegisterFactory("buzzer", func(*loom.Container, string, loom.Options) (any, error) {
		return "Buzz!", nil
	})
	_ = c.RegisterDelegator("buzzer", func(_ *loom.Container, _ string, callback loom.Callback, _ loom.Options) (any, error) {
		inner, err := callback()
		if err != nil {
			return nil, err
		}
		return "A:" + inner.(string), nil
	})
	_ = c.RegisterDelegator("buzzer", func(_ *loom.Container, _ string, callback loom.Callback, _ loom.Options) (any, error) {
		inner, err := callback()
		if err != nil {
			return nil, err
		}
		return "B:" + inner.(string), nil
	})

	instance, _ := c.Get("buzzer")
	fmt.Println(instance)
	// Output: B:A:Buzz!
}

func ExampleContainer_RegisterAbstractFactory() {
	c := loom.New()

	_ = c.RegisterAbstractFactory(loom.NewAbstractFactory(
		func(_ *loom.Container, name string) bool {
			return strings.HasPrefix(name, "queue.")
		},
		func(_ *loom.Container, name string, _ loom.Options) (any, error) {
			return "queue for " + strings.TrimPrefix(name, "queue."), nil
		},
	))

	orders, _ := c.Get("queue.orders")
	fmt.Println(orders)
	fmt.Println(c.Has("queue.billing"))
	fmt.Println(c.Has("topic.orders"))
	// Output:
	// queue for orders
	// true
	// false
}

func ExampleConfig() {
	c := loom.New()

	cfg := loom.Config{
		Factories: map[string]loom.Factory{
			"mailer": func(*loom.Container, string, loom.Options) (any, error) {
				return "smtp mailer", nil
			},
		},
		Aliases: map[string]string{
			"mail": "mailer",
		},
	}
	_ = cfg.Apply(c)

	mailer, _ := c.Get("mail")
	fmt.Println(mailer)
	// Output: smtp mailer
}
