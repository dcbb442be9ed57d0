// Package container provides a named-binding service container.
//
// Services are registered as factories, singletons, or ready instances
// and resolved by name. Factories receive the container, so services can
// pull their own dependencies during construction:
//
//	c := container.New()
//	c.Singleton("config", func(c *container.Container) (any, error) {
//	    return config.Load("config.yml", nil)
//	})
//	c.Bind("mailer", func(c *container.Container) (any, error) {
//	    cfg, err := container.Resolve[*config.Config](c, "config")
//	    if err != nil {
//	        return nil, err
//	    }
//	    return newMailer(cfg), nil
//	})
//
// Facade wraps a container+binding pair behind a typed accessor so
// call sites can use a service without holding a container reference.
package container
