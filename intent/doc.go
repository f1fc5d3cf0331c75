// Copyright 2025 Ryna Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package intent classifies user utterances ahead of any search logic.
//
// Classification is a fixed-priority rule cascade: conversational intents
// (greetings, identity questions, thanks, help and contact requests) are
// recognized first, then analytical ones (price statistics, recommendation
// requests), and finally anything mentioning a property keyword falls through
// to a generic search. Text matching none of the rules is flagged as
// off-topic so the caller can steer the conversation back.
package intent
