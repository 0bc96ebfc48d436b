// File: node_test.go
// Title: OFX Tree Node Unit Tests
// Description: Tests for node construction, navigation, detachment, and
//              the leaf/aggregate classification rules.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-13
// Modified: 2026-08-13

package tree

import "testing"

func TestIsLeaf(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want bool
	}{
		{"leaf with text", NewLeaf("TRNAMT", "-42.15"), true},
		{"aggregate", New("STMTTRN"), false},
		{"whitespace text is not a leaf", NewLeaf("STMTTRN", "  \n "), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.IsLeaf(); got != tt.want {
				t.Errorf("IsLeaf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewLeafTrimsText(t *testing.T) {
	leaf := NewLeaf("MEMO", "  grocery run \n")
	if leaf.Text != "grocery run" {
		t.Errorf("Text = %q, want trimmed text", leaf.Text)
	}
}

func TestFindChildAndGrandchild(t *testing.T) {
	root := New("STMTTRN")
	currency := New("CURRENCY")
	currency.AddChild(NewLeaf("CURSYM", "EUR"))
	root.AddChild(NewLeaf("TRNAMT", "10.00"))
	root.AddChild(currency)

	if got := root.FindChild("CURRENCY"); got != currency {
		t.Error("FindChild(CURRENCY) should return the currency aggregate")
	}
	if got := root.FindChild("NOPE"); got != nil {
		t.Error("FindChild of a missing tag should return nil")
	}
	if got := root.FindGrandchild("CURSYM"); got == nil || got.Text != "EUR" {
		t.Errorf("FindGrandchild(CURSYM) = %v, want the EUR leaf", got)
	}
	// A direct child must not be matched by the grandchild search
	if got := root.FindGrandchild("CURRENCY"); got != nil {
		t.Error("FindGrandchild must only match at exactly one level below children")
	}
}

func TestRemoveChild(t *testing.T) {
	root := New("MFINFO")
	a := New("MFASSETCLASS")
	b := NewLeaf("MFTYPE", "OPENEND")
	root.AddChild(a)
	root.AddChild(b)

	if !root.RemoveChild(a) {
		t.Fatal("RemoveChild should report true for a present child")
	}
	if len(root.Children) != 1 || root.Children[0] != b {
		t.Errorf("remaining children = %v, want only MFTYPE", root.Children)
	}
	if root.RemoveChild(a) {
		t.Error("RemoveChild should report false for an absent child")
	}
}

func TestDepthAndCount(t *testing.T) {
	root := New("A")
	child := New("B")
	child.AddChild(NewLeaf("C", "1"))
	root.AddChild(child)
	root.AddChild(NewLeaf("D", "2"))

	if got := root.Depth(); got != 3 {
		t.Errorf("Depth() = %d, want 3", got)
	}
	if got := root.Count(); got != 4 {
		t.Errorf("Count() = %d, want 4", got)
	}
}

func TestWalkOrder(t *testing.T) {
	root := New("A")
	b := New("B")
	b.AddChild(NewLeaf("C", "1"))
	root.AddChild(b)
	root.AddChild(NewLeaf("D", "2"))

	var visited []string
	root.Walk(func(n *Node) bool {
		visited = append(visited, n.Tag)
		return true
	})

	want := []string{"A", "B", "C", "D"}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visited[%d] = %s, want %s", i, visited[i], want[i])
		}
	}
}

func TestString(t *testing.T) {
	root := New("A")
	root.AddChild(NewLeaf("B", "1"))

	if got := root.String(); got != "<A><B>1</B></A>" {
		t.Errorf("String() = %q", got)
	}
}
