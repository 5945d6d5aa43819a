package entities

import "testing"

func TestCustomerIsActive(t *testing.T) {
	cases := []struct {
		status CustomerStatus
		want   bool
	}{
		{CustomerStatusActive, true},
		{CustomerStatusDemo, true},
		{CustomerStatusInactive, false},
	}
	for _, tc := range cases {
		c := Customer{Status: tc.status}
		if got := c.IsActive(); got != tc.want {
			t.Fatalf("IsActive for %s: got %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestCustomerAggregateStatus(t *testing.T) {
	t.Run("uniform connections", func(t *testing.T) {
		c := Customer{
			Status: CustomerStatusActive,
			Connections: []Connection{
				{VCNumber: "VC001", Status: CustomerStatusInactive},
				{VCNumber: "VC002", Status: CustomerStatusInactive},
			},
		}
		if got := c.AggregateStatus(); got != AggregateStatusInactive {
			t.Fatalf("expected inactive, got %s", got)
		}
	})

	t.Run("differing connections are mixed", func(t *testing.T) {
		c := Customer{
			Connections: []Connection{
				{VCNumber: "VC001", Status: CustomerStatusActive},
				{VCNumber: "VC002", Status: CustomerStatusDemo},
			},
		}
		if got := c.AggregateStatus(); got != AggregateStatusMixed {
			t.Fatalf("expected mixed, got %s", got)
		}
	})

	t.Run("legacy customer falls back to account status", func(t *testing.T) {
		c := Customer{Status: CustomerStatusDemo}
		if got := c.AggregateStatus(); got != AggregateStatusDemo {
			t.Fatalf("expected demo, got %s", got)
		}
	})
}

func TestCustomerHasMultipleVCs(t *testing.T) {
	t.Run("two connections", func(t *testing.T) {
		c := Customer{Connections: []Connection{{VCNumber: "VC001"}, {VCNumber: "VC002"}}}
		if !c.HasMultipleVCs() {
			t.Fatalf("expected multiple VCs")
		}
	})

	t.Run("single connection matching the legacy vc", func(t *testing.T) {
		c := Customer{VCNumber: "VC001", Connections: []Connection{{VCNumber: "VC001"}}}
		if c.HasMultipleVCs() {
			t.Fatalf("single matching connection is not multiple")
		}
	})

	t.Run("single connection differing from the legacy vc", func(t *testing.T) {
		c := Customer{VCNumber: "VC001", Connections: []Connection{{VCNumber: "VC002"}}}
		if !c.HasMultipleVCs() {
			t.Fatalf("a connection distinct from the legacy vc counts as multiple")
		}
	})

	t.Run("legacy customer without connections", func(t *testing.T) {
		c := Customer{VCNumber: "VC001"}
		if c.HasMultipleVCs() {
			t.Fatalf("legacy single-vc customer is not multiple")
		}
	})
}

func TestCustomerPrimaryConnection(t *testing.T) {
	c := Customer{
		Connections: []Connection{
			{VCNumber: "VC001"},
			{VCNumber: "VC002", IsPrimary: true},
		},
	}
	p := c.PrimaryConnection()
	if p == nil || p.VCNumber != "VC002" {
		t.Fatalf("expected VC002, got %+v", p)
	}

	legacy := Customer{}
	if legacy.PrimaryConnection() != nil {
		t.Fatalf("expected nil for legacy customer")
	}
}

func TestActorCanChangeStatus(t *testing.T) {
	if !(Actor{Role: RoleAdmin}).CanChangeStatus() {
		t.Fatalf("admin must be allowed")
	}
	if (Actor{Role: RoleEmployee}).CanChangeStatus() {
		t.Fatalf("employee must go through the request workflow")
	}
}
