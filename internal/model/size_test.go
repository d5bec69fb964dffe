package model

import "testing"

func TestGroupBoxState_Next(t *testing.T) {
	tests := []struct {
		state    GroupBoxState
		expected GroupBoxState
	}{
		{GroupBoxStateLarge, GroupBoxStateMiddle},
		{GroupBoxStateMiddle, GroupBoxStateSmall},
		{GroupBoxStateSmall, GroupBoxStateCollapsed},
		{GroupBoxStateCollapsed, GroupBoxStateCollapsed},
		{GroupBoxStateQuickAccess, GroupBoxStateQuickAccess},
	}

	for _, test := range tests {
		result := test.state.Next()
		if result != test.expected {
			t.Errorf("GroupBoxState(%s).Next() = %s, expected %s", test.state, result, test.expected)
		}
	}
}

func TestGroupBoxState_IsCollapsed(t *testing.T) {
	tests := []struct {
		state    GroupBoxState
		expected bool
	}{
		{GroupBoxStateLarge, false},
		{GroupBoxStateMiddle, false},
		{GroupBoxStateSmall, false},
		{GroupBoxStateCollapsed, true},
		{GroupBoxStateQuickAccess, true},
	}

	for _, test := range tests {
		result := test.state.IsCollapsed()
		if result != test.expected {
			t.Errorf("GroupBoxState(%s).IsCollapsed() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestGroupBoxState_Wider(t *testing.T) {
	wider := GroupBoxStateSmall.Wider()
	if len(wider) != 2 || wider[0] != GroupBoxStateMiddle || wider[1] != GroupBoxStateLarge {
		t.Errorf("GroupBoxStateSmall.Wider() = %v, expected [Middle Large]", wider)
	}

	if got := GroupBoxStateLarge.Wider(); len(got) != 0 {
		t.Errorf("GroupBoxStateLarge.Wider() = %v, expected empty", got)
	}
}

func TestParseGroupBoxState(t *testing.T) {
	state, err := ParseGroupBoxState(" collapsed ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if state != GroupBoxStateCollapsed {
		t.Errorf("Expected Collapsed, got %s", state)
	}

	if _, err := ParseGroupBoxState("Huge"); err == nil {
		t.Error("Expected error for unknown state, got nil")
	}
}

func TestParseControlSize(t *testing.T) {
	tests := []struct {
		input    string
		expected ControlSize
		wantErr  bool
	}{
		{"Large", ControlSizeLarge, false},
		{"middle", ControlSizeMiddle, false},
		{" SMALL", ControlSizeSmall, false},
		{"", "", true},
		{"Tiny", "", true},
	}

	for _, test := range tests {
		result, err := ParseControlSize(test.input)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseControlSize(%q) error = %v, wantErr %v", test.input, err, test.wantErr)
			continue
		}
		if result != test.expected {
			t.Errorf("ParseControlSize(%q) = %s, expected %s", test.input, result, test.expected)
		}
	}
}

func TestControlSize_String(t *testing.T) {
	if ControlSizeMiddle.String() != "Middle" {
		t.Errorf("ControlSize.String() = %s, expected Middle", ControlSizeMiddle.String())
	}
}
