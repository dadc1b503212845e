/*
Package client is the programmatic consumer surface of the taskboard
server: a process-wide identity context that signs up, signs in and
signs out against the hosted auth provider, mirrors the resulting
session, and issues authenticated API calls on behalf of a UI.

State changes are reported through subscription callbacks so consumers
can react (navigate on sign-in, clear views on sign-out) without
polling.
*/
package client
