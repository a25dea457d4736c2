// Package rpn implements a single-precision floating-point calculator using
// the shunting-yard algorithm.
//
// Evaluation happens in three stages. Tokenize scans text into tokens,
// Postfix reorders the tokens into reverse Polish notation using operator
// precedence, and EvalPostfix reduces the postfix sequence on a value stack.
// EvalString runs all three. Parse runs the first two once so that the
// resulting Expr can be evaluated any number of times.
//
// The operators are + - * / and ^. Exponentiation binds tightest, then
// multiplication and division, then addition and subtraction. Operators of
// equal precedence group left to right, including ^, so "2^3^2" is 64; use
// the RightPow option for the usual mathematical convention. There are no
// unary operators: "-1" is an error because - has no left operand.
//
// Division by zero is not an error. Results follow IEEE-754 float32
// arithmetic, so "1/0" is +Inf and "0/0" is NaN.
//
package rpn
