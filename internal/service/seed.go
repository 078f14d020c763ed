package service

import "github.com/bagdasarian/member-directory/internal/domain"

// sampleMembers - фиксированный список из десяти примеров для массового заполнения
var sampleMembers = []domain.MemberInput{
	{Name: "Ada Lovelace", Position: "Backend Engineer", Birthday: "1990-12-10", Nickname: "ada"},
	{Name: "Grace Hopper", Position: "Compiler Engineer", Birthday: "1986-12-09", Nickname: "amazing-grace"},
	{Name: "Alan Turing", Position: "Research Lead", Birthday: "1992-06-23", Nickname: "enigma"},
	{Name: "Margaret Hamilton", Position: "Flight Software Engineer", Birthday: "1988-08-17", Nickname: "apollo"},
	{Name: "Dennis Ritchie", Position: "Systems Programmer", Birthday: "1991-09-09", Nickname: "dmr"},
	{Name: "Barbara Liskov", Position: "Architect", Birthday: "1989-11-07", Nickname: "liskov"},
	{Name: "Ken Thompson", Position: "Systems Programmer", Birthday: "1993-02-04", Nickname: "ken"},
	{Name: "Radia Perlman", Position: "Network Engineer", Birthday: "1987-12-18", Nickname: "stp"},
	{Name: "Donald Knuth", Position: "Algorithm Designer", Birthday: "1994-01-10", Nickname: "taocp"},
	{Name: "Katherine Johnson", Position: "Data Analyst", Birthday: "1990-08-26", Nickname: "kj"},
}
