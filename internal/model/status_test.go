package model

import "testing"

func TestSessionStatus_IsBusy(t *testing.T) {
	tests := []struct {
		status   SessionStatus
		expected bool
	}{
		{StatusIdle, false},
		{StatusUploading, true},
		{StatusConverting, true},
		{StatusCompleted, false},
		{StatusFailed, false},
	}

	for _, test := range tests {
		result := test.status.IsBusy()
		if result != test.expected {
			t.Errorf("SessionStatus(%s).IsBusy() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestSessionStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status   SessionStatus
		expected bool
	}{
		{StatusIdle, false},
		{StatusUploading, false},
		{StatusConverting, false},
		{StatusCompleted, true},
		{StatusFailed, true},
	}

	for _, test := range tests {
		result := test.status.IsTerminal()
		if result != test.expected {
			t.Errorf("SessionStatus(%s).IsTerminal() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestStatusFromRemote(t *testing.T) {
	tests := []struct {
		remote   string
		expected SessionStatus
	}{
		{RemoteStatusCompleted, StatusCompleted},
		{RemoteStatusFailed, StatusFailed},
		{RemoteStatusConverting, StatusConverting},
		{RemoteStatusQueued, StatusConverting},
		{RemoteStatusUploaded, StatusConverting},
		{"something-new", StatusConverting},
	}

	for _, test := range tests {
		result := StatusFromRemote(test.remote)
		if result != test.expected {
			t.Errorf("StatusFromRemote(%s) = %s, expected %s", test.remote, result, test.expected)
		}
	}
}

func TestSessionStatus_String(t *testing.T) {
	status := StatusConverting
	expected := "Converting"
	result := status.String()

	if result != expected {
		t.Errorf("SessionStatus.String() = %s, expected %s", result, expected)
	}
}
