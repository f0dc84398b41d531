package internal

type loxClass struct {
	name       string
	superclass *loxClass
	methods    map[string]*loxFunction
}

func (c *loxClass) findMethod(name string) *loxFunction {
	if method, ok := c.methods[name]; ok {
		return method
	}
	if c.superclass != nil {
		return c.superclass.findMethod(name)
	}
	return nil
}

func (c *loxClass) arity() int {
	if initializer := c.findMethod("init"); initializer != nil {
		return initializer.arity()
	}
	return 0
}

func (c *loxClass) call(exec *exec, arguments []interface{}) interface{} {
	instance := &loxInstance{
		class:  c,
		fields: make(map[string]interface{}),
	}
	if initializer := c.findMethod("init"); initializer != nil {
		initializer.bind(instance).call(exec, arguments)
	}
	return instance
}

func (c *loxClass) String() string {
	return c.name
}
