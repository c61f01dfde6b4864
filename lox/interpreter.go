package lox

// Interpreter evaluates one expression tree by recursive walk. It holds
// no state between evaluations; the walk is bounded by tree depth.
type Interpreter struct{}

func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// Evaluate reduces expr to a runtime value. Applying an operator to
// operand shapes it does not define fails with *UnsupportedOperatorError.
func (in *Interpreter) Evaluate(expr Expr) (Value, error) {
	switch e := expr.(type) {
	case *BinaryExpr:
		return in.evalBinary(e)
	case *UnaryExpr:
		return in.evalUnary(e)
	case *GroupingExpr:
		return in.Evaluate(e.Expr)
	case *NumberLiteral:
		return NewNumber(e.Value), nil
	case *StringLiteral:
		return NewString(e.Value), nil
	case *BoolLiteral:
		return NewBool(e.Value), nil
	case *NilLiteral:
		return NewNil(), nil
	default:
		return NewNil(), &RuntimeError{Message: "unsupported expression"}
	}
}

// evalBinary dispatches on (operator type, left kind, right kind) and
// falls through to an unsupported-operator error on no match.
//
// The != branches deliberately mirror ==: same accepted pairings, same
// comparison (not its negation), and no nil pairing. `1 != 1` is true,
// `1 != 2` is false, `nil != nil` is an error.
func (in *Interpreter) evalBinary(e *BinaryExpr) (Value, error) {
	left, err := in.Evaluate(e.Left)
	if err != nil {
		return NewNil(), err
	}
	right, err := in.Evaluate(e.Right)
	if err != nil {
		return NewNil(), err
	}

	bothNumbers := left.Kind() == KindNumber && right.Kind() == KindNumber
	bothStrings := left.Kind() == KindString && right.Kind() == KindString

	switch e.Operator.Type {
	case tokenMinus:
		if bothNumbers {
			return NewNumber(left.Number() - right.Number()), nil
		}
	case tokenSlash:
		// IEEE division: /0 yields Inf or NaN, never an error.
		if bothNumbers {
			return NewNumber(left.Number() / right.Number()), nil
		}
	case tokenStar:
		if bothNumbers {
			return NewNumber(left.Number() * right.Number()), nil
		}
	case tokenPlus:
		if bothNumbers {
			return NewNumber(left.Number() + right.Number()), nil
		}
		if bothStrings {
			return NewString(left.Str() + right.Str()), nil
		}
	case tokenGreater:
		if bothNumbers {
			return NewBool(left.Number() > right.Number()), nil
		}
	case tokenGreaterEqual:
		if bothNumbers {
			return NewBool(left.Number() >= right.Number()), nil
		}
	case tokenLess:
		if bothNumbers {
			return NewBool(left.Number() < right.Number()), nil
		}
	case tokenLessEqual:
		if bothNumbers {
			return NewBool(left.Number() <= right.Number()), nil
		}
	case tokenEqualEqual:
		if bothNumbers {
			return NewBool(left.Number() == right.Number()), nil
		}
		if bothStrings {
			return NewBool(left.Str() == right.Str()), nil
		}
		if left.IsNil() && right.IsNil() {
			return NewBool(true), nil
		}
	case tokenBangEqual:
		if bothNumbers {
			return NewBool(left.Number() == right.Number()), nil
		}
		if bothStrings {
			return NewBool(left.Str() == right.Str()), nil
		}
	}

	return NewNil(), &UnsupportedOperatorError{Token: e.Operator}
}

func (in *Interpreter) evalUnary(e *UnaryExpr) (Value, error) {
	right, err := in.Evaluate(e.Right)
	if err != nil {
		return NewNil(), err
	}

	switch e.Operator.Type {
	case tokenBang:
		switch right.Kind() {
		case KindNumber:
			// Positive-only truthiness: !2 is false, !0 and !-1 are true.
			return NewBool(!(right.Number() > 0)), nil
		case KindBool:
			return NewBool(!right.Bool()), nil
		case KindNil:
			return NewBool(false), nil
		default:
			return NewBool(true), nil
		}
	case tokenMinus:
		if right.Kind() == KindNumber {
			return NewNumber(-right.Number()), nil
		}
	}

	return NewNil(), &UnsupportedOperatorError{Token: e.Operator}
}
