package expr

import "go.mongodb.org/mongo-driver/bson"

// Condition builds a $cond expression in readable steps:
//
//	expr.When(expr.Eq("$status", "active")).
//		Then("$field").
//		Otherwise(expr.Remove)
type Condition struct {
	condition any
	then      any
}

// When starts a conditional expression from the given condition.
func When(condition any) *Condition {
	return &Condition{condition: condition}
}

// Then sets the value produced when the condition holds.
func (c *Condition) Then(value any) *Condition {
	c.then = value
	return c
}

// Otherwise sets the fallback value and assembles the $cond expression.
func (c *Condition) Otherwise(value any) bson.M {
	return Cond(c.condition, c.then, value)
}
