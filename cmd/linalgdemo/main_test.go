// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunPrintsScenario(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf))

	out := buf.String()
	for _, want := range []string{
		"Dot product of v1 and v2: 89\n",
		"Cross product of v1 and v2: [25, -5, -2]\n",
		"The length of v1: 5.916079783099616\n",
		"v2 is added to v1. Final v1: [3, 7, 20]\n",
		"v2 is multiplied by 2. Final v2: [4, 8, 30]\n",
		"v2 is subtracted from v1. Final v1: [-1, -1, -10]\n",
		"[1, 0, 0]\n[0, 1, 0]\n[0, 0, 1]\n",
		"Determinant of m3: -236\n",
		"m5 is multiplied by 5:\n|5, 0, 0|\n|0, 5, 0|\n|0, 0, 5|\n",
		"m3's first two row is interchanged:\n|7, 0, 1|\n|12, 4, 4|\n|4, 0, 9|\n",
		"Row 1 of m3 is multiplied by 3:\n|7, 0, 1|\n|36, 12, 12|\n|4, 0, 9|\n",
		"3 times row 0 is added to row 1:\n|7, 0, 1|\n|57, 12, 15|\n|4, 0, 9|\n",
		"The inverse of m3:\n",
	} {
		require.Contains(t, out, want)
	}
}
