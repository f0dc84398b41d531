package internal

type loxInstance struct {
	class  *loxClass
	fields map[string]interface{}
}

// get looks up a field first and falls back to a method bound to the instance
func (o *loxInstance) get(tk *token) interface{} {
	if val, ok := o.fields[tk.lexeme]; ok {
		return val
	}
	if method := o.class.findMethod(tk.lexeme); method != nil {
		return method.bind(o)
	}
	runtimeErr(undefinedProp(tk), tk)
	return nil
}

func (o *loxInstance) set(name *token, value interface{}) {
	o.fields[name.lexeme] = value
}

func (o *loxInstance) String() string {
	return o.class.name + " instance"
}
