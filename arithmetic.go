package cba

import (
	"math/big"

	"github.com/johncgriffin/overflow"
)

// Add adds delta to the payload. The result wraps to the width like any assignment.
func (i *Integer) Add(delta int64) {
	i.arithmetic(delta, overflow.Add64, (*big.Int).Add, i.set)
}

// Sub subtracts delta from the payload. The result wraps to the width like any assignment.
func (i *Integer) Sub(delta int64) {
	i.arithmetic(delta, overflow.Sub64, (*big.Int).Sub, i.set)
}

// Mul multiplies the payload by factor. The result wraps to the width like any assignment.
func (i *Integer) Mul(factor int64) {
	i.arithmetic(factor, overflow.Mul64, (*big.Int).Mul, i.set)
}

// Add adds delta to the 0 or 1 payload. Any nonzero result is true.
func (b *Boolean) Add(delta int64) {
	b.arithmetic(delta, overflow.Add64, (*big.Int).Add, b.setResult)
}

// Sub subtracts delta from the 0 or 1 payload. Any nonzero result is true.
func (b *Boolean) Sub(delta int64) {
	b.arithmetic(delta, overflow.Sub64, (*big.Int).Sub, b.setResult)
}

// Mul multiplies the 0 or 1 payload by factor. Any nonzero result is true.
func (b *Boolean) Mul(factor int64) {
	b.arithmetic(factor, overflow.Mul64, (*big.Int).Mul, b.setResult)
}

func (b *Boolean) setResult(v int64) {
	b.set(boolInt(v != 0))
}

func (i *Integer) arithmetic(operand int64, intFunc func(int64, int64) (int64, bool),
	bigFunc func(z, x, y *big.Int) *big.Int, store func(int64)) {
	if !i.canAssign(i.String()) {
		return
	}
	ret, ok := intFunc(i.value, operand)
	if !ok {
		// beyond 64 bits, keep the low bits of the exact result
		ret = lowInt64(bigFunc(new(big.Int), big.NewInt(i.value), big.NewInt(operand)))
	}
	store(ret)
	i.assigned()
}
